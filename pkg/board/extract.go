package board

import (
	"encoding/json"
	"strings"
)

// Structured stage artifacts arrive as fenced code blocks inside
// assistant prose. A block qualifies when its info string is "json"
// (any case) or absent and its body parses as a JSON object carrying
// the stage's discriminator field. The last qualifying block wins;
// everything else is ignored, so extraction can be re-run safely.

// validRecommendations are the review verdicts the engine accepts.
var validRecommendations = map[string]bool{
	"approve":         true,
	"request_changes": true,
	"comment_only":    true,
}

// ExtractIssuePlan finds the latest plan artifact: a JSON object whose
// "issues" field is an array.
func ExtractIssuePlan(text string) (map[string]any, bool) {
	return lastQualifying(text, func(obj map[string]any) bool {
		issues, ok := obj["issues"].([]any)
		return ok && issues != nil
	})
}

// ExtractBuildResult finds the latest build artifact: a JSON object
// whose "pr_url" field is a non-empty string.
func ExtractBuildResult(text string) (map[string]any, bool) {
	return lastQualifying(text, func(obj map[string]any) bool {
		prURL, ok := obj["pr_url"].(string)
		return ok && prURL != ""
	})
}

// ExtractReview finds the latest review artifact: a JSON object whose
// "recommendation" is one of approve, request_changes, comment_only.
func ExtractReview(text string) (map[string]any, bool) {
	return lastQualifying(text, func(obj map[string]any) bool {
		rec, ok := obj["recommendation"].(string)
		return ok && validRecommendations[rec]
	})
}

// lastQualifying scans fenced blocks newest-first and returns the first
// one that parses as an object and satisfies the discriminator check.
func lastQualifying(text string, qualifies func(map[string]any) bool) (map[string]any, bool) {
	blocks := fencedBlocks(text)
	for i := len(blocks) - 1; i >= 0; i-- {
		info := strings.ToLower(strings.TrimSpace(blocks[i].info))
		if info != "" && info != "json" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(blocks[i].body), &obj); err != nil {
			continue
		}
		if qualifies(obj) {
			return obj, true
		}
	}
	return nil, false
}

type fencedBlock struct {
	info string
	body string
}

// fencedBlocks extracts ``` fenced code blocks in document order. An
// unterminated fence yields no block.
func fencedBlocks(text string) []fencedBlock {
	var blocks []fencedBlock
	lines := strings.Split(text, "\n")

	inBlock := false
	var info string
	var body []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				blocks = append(blocks, fencedBlock{info: info, body: strings.Join(body, "\n")})
				inBlock = false
				body = nil
				continue
			}
			inBlock = true
			info = strings.TrimPrefix(trimmed, "```")
			continue
		}
		if inBlock {
			body = append(body, line)
		}
	}
	return blocks
}
