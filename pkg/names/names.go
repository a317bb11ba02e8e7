// Package names generates human-friendly agent names and their slugs.
package names

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

var adjectives = []string{
	"amber", "bold", "brave", "bright", "calm", "clever", "crimson",
	"curious", "eager", "fearless", "gentle", "golden", "keen", "lively",
	"lucid", "mellow", "nimble", "patient", "quick", "quiet", "rapid",
	"sage", "sharp", "silent", "steady", "swift", "tidy", "vivid",
	"wandering", "witty",
}

var nouns = []string{
	"badger", "beacon", "comet", "condor", "cricket", "falcon", "fern",
	"finch", "fox", "glacier", "harbor", "heron", "juniper", "kestrel",
	"lantern", "lynx", "maple", "meadow", "orca", "osprey", "otter",
	"pine", "raven", "reef", "sparrow", "summit", "tern", "thicket",
	"walnut", "wren",
}

// Generate returns a random "Adjective Noun" display name.
func Generate() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return title(adj) + " " + title(noun)
}

// Slugify converts a display name to its lowercase hyphenated form.
// Runs of non-alphanumeric characters collapse to a single hyphen and
// leading/trailing hyphens are trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
