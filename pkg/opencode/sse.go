package opencode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// Reconnect backoff bounds for the event stream.
const (
	streamBackoffInitial = 250 * time.Millisecond
	streamBackoffMax     = 10 * time.Second
)

// Stream consumes the backend's /event SSE feed and invokes handle for
// every event, in order. It reconnects with jittered exponential
// backoff on any stream failure, resuming from the last seen event id
// via Last-Event-ID. Blocks until ctx is cancelled.
func (c *Client) Stream(ctx context.Context, handle func(Event)) error {
	backoff := streamBackoffInitial
	lastEventID := ""

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		connected, lastID, err := c.streamOnce(ctx, lastEventID, handle)
		if lastID != "" {
			lastEventID = lastID
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			slog.Debug("Event stream disconnected",
				"base_url", c.baseURL, "error", err)
		}

		// A connection that delivered events resets the backoff.
		if connected {
			backoff = streamBackoffInitial
		}

		// Full jitter keeps reconnecting backends from thundering.
		delay := time.Duration(rand.Int64N(int64(backoff)) + int64(backoff)/2)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		backoff *= 2
		if backoff > streamBackoffMax {
			backoff = streamBackoffMax
		}
	}
}

// streamOnce opens one SSE connection and decodes events until it
// breaks. Returns whether any event was delivered and the last event id.
func (c *Client) streamOnce(ctx context.Context, lastEventID string, handle func(Event)) (bool, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/event", nil)
	if err != nil {
		return false, "", err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if lastEventID != "" {
		req.Header.Set("Last-Event-ID", lastEventID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return false, "", &StatusError{StatusCode: resp.StatusCode}
	}

	delivered := false
	lastID := ""
	dec := newEventDecoder(resp.Body)
	for {
		evt, err := dec.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return delivered, lastID, nil
			}
			return delivered, lastID, err
		}
		if evt.ID != "" {
			lastID = evt.ID
		}
		delivered = true
		handle(evt)
	}
}

// eventDecoder reads the line-oriented SSE framing: "event:", "data:",
// and "id:" fields accumulate until a blank line dispatches the event.
// Comment lines (leading ':') and unknown fields are ignored.
type eventDecoder struct {
	scanner *bufio.Scanner
}

func newEventDecoder(r io.Reader) *eventDecoder {
	sc := bufio.NewScanner(r)
	// Message snapshots can be large; grow well past the default 64K.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &eventDecoder{scanner: sc}
}

func (d *eventDecoder) next() (Event, error) {
	var evt Event
	var data []string
	seen := false

	for d.scanner.Scan() {
		line := d.scanner.Text()

		if line == "" {
			if seen {
				evt.Data = []byte(strings.Join(data, "\n"))
				return evt, nil
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			evt.Kind = value
			seen = true
		case "data":
			data = append(data, value)
			seen = true
		case "id":
			evt.ID = value
			seen = true
		}
	}

	if err := d.scanner.Err(); err != nil {
		return Event{}, err
	}
	// A final event without a trailing blank line still counts.
	if seen {
		evt.Data = []byte(strings.Join(data, "\n"))
		return evt, nil
	}
	return Event{}, io.EOF
}
