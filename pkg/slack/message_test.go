package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionTexts(blocks []goslack.Block) []string {
	var out []string
	for _, b := range blocks {
		if section, ok := b.(*goslack.SectionBlock); ok && section.Text != nil {
			out = append(out, section.Text.Text)
		}
	}
	return out
}

func actionURLs(blocks []goslack.Block) []string {
	var out []string
	for _, b := range blocks {
		action, ok := b.(*goslack.ActionBlock)
		if !ok {
			continue
		}
		for _, el := range action.Elements.ElementSet {
			if btn, ok := el.(*goslack.ButtonBlockElement); ok {
				out = append(out, btn.URL)
			}
		}
	}
	return out
}

func TestBuildCardReviewMessage(t *testing.T) {
	blocks := BuildCardReviewMessage(CardReviewInput{
		CardID:         "card-1",
		Title:          "Add rate limiting",
		Recommendation: "approve",
		Summary:        "Change is small and well tested.",
	}, "https://squads.example.com")

	texts := sectionTexts(blocks)
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "Review needed")
	assert.Contains(t, texts[0], "Add rate limiting")
	assert.Contains(t, texts[0], "`approve`")
	// The marker must survive in the message text so follow-ups can
	// find this message and thread onto it.
	assert.Contains(t, texts[0], cardMarker("card-1"))
	assert.Contains(t, texts[1], "well tested")

	urls := actionURLs(blocks)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://squads.example.com/cards/card-1", urls[0])
}

func TestBuildCardReviewMessageNoSummary(t *testing.T) {
	blocks := BuildCardReviewMessage(CardReviewInput{CardID: "c", Title: "t"}, "https://d")

	assert.Len(t, sectionTexts(blocks), 1)
}

func TestBuildSessionFinishedMessage(t *testing.T) {
	tests := []struct {
		status    string
		wantEmoji string
		wantLabel string
	}{
		{"completed", ":white_check_mark:", "Session Complete"},
		{"failed", ":x:", "Session Failed"},
		{"cancelled", ":no_entry_sign:", "Session Cancelled"},
		{"weird", ":question:", "Session weird"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			blocks := BuildSessionFinishedMessage(SessionFinishedInput{
				SessionID: "sess-1",
				Title:     "Fix login",
				Status:    tt.status,
			}, "https://squads.example.com")

			texts := sectionTexts(blocks)
			require.NotEmpty(t, texts)
			assert.Contains(t, texts[0], tt.wantEmoji)
			assert.Contains(t, texts[0], tt.wantLabel)
			assert.Contains(t, texts[0], "Fix login")

			urls := actionURLs(blocks)
			require.Len(t, urls, 1)
			assert.Equal(t, "https://squads.example.com/sessions/sess-1", urls[0])
		})
	}
}

func TestBuildSessionFinishedMessageWithError(t *testing.T) {
	blocks := BuildSessionFinishedMessage(SessionFinishedInput{
		SessionID:    "sess-1",
		Status:       "failed",
		ErrorMessage: "backend_silent",
	}, "https://d")

	texts := sectionTexts(blocks)
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[0], "backend_silent")
}

func TestTruncateForSlack(t *testing.T) {
	short := "fits"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+100)
	got := truncateForSlack(long)
	assert.Contains(t, got, "truncated")
	assert.Less(t, len(got), len(long))
}
