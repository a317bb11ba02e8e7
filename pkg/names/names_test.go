package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 20; i++ {
		name := Generate()
		parts := strings.Split(name, " ")
		assert.Len(t, parts, 2)
		for _, p := range parts {
			assert.NotEmpty(t, p)
			assert.Equal(t, strings.ToUpper(p[:1]), p[:1], "words are title-cased")
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Swift Falcon", "swift-falcon"},
		{"already slug", "swift-falcon", "swift-falcon"},
		{"punctuation collapses", "O'Brien  Jr.", "o-brien-jr"},
		{"leading and trailing junk", "  --Swift-- ", "swift"},
		{"digits kept", "Agent 47", "agent-47"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
