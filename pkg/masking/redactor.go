// Package masking redacts secrets from transcript text before it is
// persisted or broadcast. Backend processes run with the operator's
// credentials in their environment, so agent output can leak keys.
package masking

import (
	"regexp"

	"github.com/buildsquads/squads/pkg/models"
)

type pattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Patterns are compiled once at package init. Text parts are re-masked
// on every upsert against the accumulated text, so a secret split
// across streaming deltas is still caught once it is whole.
var builtinPatterns = []pattern{
	{
		name:        "api_key",
		regex:       regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`),
		replacement: `"api_key": "__MASKED_API_KEY__"`,
	},
	{
		name:        "password",
		regex:       regexp.MustCompile(`(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`),
		replacement: `"password": "__MASKED_PASSWORD__"`,
	},
	{
		name:        "token",
		regex:       regexp.MustCompile(`(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
		replacement: `"token": "__MASKED_TOKEN__"`,
	},
	{
		name:        "secret_key",
		regex:       regexp.MustCompile(`(?i)(?:secret[_-]?key|private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
		replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
	},
	{
		name:        "certificate",
		regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`),
		replacement: `__MASKED_CERTIFICATE__`,
	},
	{
		name:        "ssh_key",
		regex:       regexp.MustCompile(`ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`),
		replacement: `__MASKED_SSH_KEY__`,
	},
	{
		name:        "aws_access_key",
		regex:       regexp.MustCompile(`\bAKIA[A-Z0-9]{16}\b`),
		replacement: `__MASKED_AWS_KEY__`,
	},
	{
		name:        "github_token",
		regex:       regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`),
		replacement: `__MASKED_GITHUB_TOKEN__`,
	},
	{
		name:        "slack_token",
		regex:       regexp.MustCompile(`(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`),
		replacement: `__MASKED_SLACK_TOKEN__`,
	},
}

// Redactor applies the builtin secret patterns to transcript text.
// Stateless after construction and safe for concurrent use.
type Redactor struct {
	patterns []pattern
}

// NewRedactor creates a redactor with the builtin pattern set.
func NewRedactor() *Redactor {
	return &Redactor{patterns: builtinPatterns}
}

// Mask replaces every pattern match in s with its placeholder.
func (r *Redactor) Mask(s string) string {
	if s == "" {
		return s
	}
	for _, p := range r.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// MaskMessage redacts the text of every text and reasoning part in
// place. Tool state and raw payloads are left alone; the dashboard
// renders transcript text, not raw part payloads.
func (r *Redactor) MaskMessage(m *models.Message) {
	for i := range m.Parts {
		switch m.Parts[i].Type {
		case models.PartText, models.PartReasoning:
			m.Parts[i].Text = r.Mask(m.Parts[i].Text)
		}
	}
}
