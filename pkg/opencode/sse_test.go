package opencode

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, raw string) []Event {
	t.Helper()
	dec := newEventDecoder(strings.NewReader(raw))
	var out []Event
	for {
		evt, err := dec.next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, evt)
	}
}

func TestEventDecoderSingleEvent(t *testing.T) {
	events := decodeAll(t, "event: message.updated\ndata: {\"id\":\"m1\"}\n\n")

	require.Len(t, events, 1)
	assert.Equal(t, "message.updated", events[0].Kind)
	assert.JSONEq(t, `{"id":"m1"}`, string(events[0].Data))
}

func TestEventDecoderMultilineData(t *testing.T) {
	events := decodeAll(t, "data: line one\ndata: line two\n\n")

	require.Len(t, events, 1)
	assert.Equal(t, "line one\nline two", string(events[0].Data))
}

func TestEventDecoderIDAndComments(t *testing.T) {
	raw := ": heartbeat\n" +
		"id: 41\n" +
		"event: session.idle\n" +
		"data: {}\n" +
		"\n" +
		": another heartbeat\n" +
		"id: 42\n" +
		"data: {\"x\":1}\n" +
		"\n"
	events := decodeAll(t, raw)

	require.Len(t, events, 2)
	assert.Equal(t, "41", events[0].ID)
	assert.Equal(t, "session.idle", events[0].Kind)
	assert.Equal(t, "42", events[1].ID)
	assert.Empty(t, events[1].Kind)
}

func TestEventDecoderNoSpaceAfterColon(t *testing.T) {
	events := decodeAll(t, "event:tui.prompt.append\ndata:{\"text\":\"hi\"}\n\n")

	require.Len(t, events, 1)
	assert.Equal(t, "tui.prompt.append", events[0].Kind)
	assert.JSONEq(t, `{"text":"hi"}`, string(events[0].Data))
}

func TestEventDecoderFinalEventWithoutBlankLine(t *testing.T) {
	events := decodeAll(t, "event: session.idle\ndata: {}")

	require.Len(t, events, 1)
	assert.Equal(t, "session.idle", events[0].Kind)
}

func TestEventDecoderEmptyStream(t *testing.T) {
	events := decodeAll(t, "")
	assert.Empty(t, events)

	events = decodeAll(t, ": just a comment\n\n")
	assert.Empty(t, events)
}
