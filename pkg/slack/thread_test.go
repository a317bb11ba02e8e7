package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "card card-1 needs review", normalizeText("  Card   card-1\nneeds\treview "))
	assert.Equal(t, "", normalizeText("   \n\t  "))
}

func TestContainsNormalized(t *testing.T) {
	marker := normalizeText(cardMarker("card-1"))

	assert.True(t, containsNormalized("Review needed (Card  card-1)", marker))
	assert.False(t, containsNormalized("Review needed (card card-2)", marker))
}

func TestCollectMessageText(t *testing.T) {
	msg := goslack.Message{}
	msg.Text = "plain text"
	msg.Attachments = []goslack.Attachment{{Text: "attachment body", Fallback: "fallback"}}
	msg.Blocks = goslack.Blocks{BlockSet: []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "section body (card card-1)", false, false),
			nil, nil,
		),
		goslack.NewDividerBlock(),
	}}

	got := collectMessageText(msg)
	assert.Contains(t, got, "plain text")
	assert.Contains(t, got, "attachment body")
	assert.Contains(t, got, "fallback")
	assert.Contains(t, got, "card card-1")

	marker := normalizeText(cardMarker("card-1"))
	assert.True(t, containsNormalized(got, marker))
}
