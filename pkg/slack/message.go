package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Session Complete",
	"failed":    "Session Failed",
	"cancelled": "Session Cancelled",
}

func cardURL(dashboardURL, cardID string) string {
	return fmt.Sprintf("%s/cards/%s", dashboardURL, cardID)
}

func sessionURL(dashboardURL, sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s", dashboardURL, sessionID)
}

// cardMarker is the text embedded in every card notification so later
// updates for the same card thread onto the first message.
func cardMarker(cardID string) string {
	return fmt.Sprintf("card %s", cardID)
}

// BuildCardReviewMessage creates Block Kit blocks for a card awaiting
// human review after the AI review landed.
func BuildCardReviewMessage(input CardReviewInput, dashboardURL string) []goslack.Block {
	header := fmt.Sprintf(":mag: *Review needed* — %s\nAI recommendation: `%s` (%s)",
		input.Title, input.Recommendation, cardMarker(input.CardID))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}
	if input.Summary != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Summary), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "Open Card", false, false))
	btn.URL = cardURL(dashboardURL, input.CardID)
	blocks = append(blocks, goslack.NewActionBlock("", btn))
	return blocks
}

// BuildSessionFinishedMessage creates Block Kit blocks for a terminal
// session notification.
func BuildSessionFinishedMessage(input SessionFinishedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Session " + input.Status
	}

	header := fmt.Sprintf("%s *%s*", emoji, label)
	if input.Title != "" {
		header += " — " + input.Title
	}
	if input.ErrorMessage != "" {
		header += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(input.ErrorMessage))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "View Session", false, false))
	btn.URL = sessionURL(dashboardURL, input.SessionID)
	blocks = append(blocks, goslack.NewActionBlock("", btn))
	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — see dashboard)_"
}
