package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent"
)

func TestRenderPlanPrompt(t *testing.T) {
	card := &ent.Card{
		Title: "Add rate limiting",
		Body:  "Protect the public API from abusive clients.",
	}

	prompt, err := RenderPlanPrompt(card, "/repo/.squads/prds/card-1.md")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Add rate limiting")
	assert.Contains(t, prompt, "abusive clients")
	assert.Contains(t, prompt, "/repo/.squads/prds/card-1.md")
	assert.Contains(t, prompt, `"issues"`)
}

func TestRenderPlanPromptNoBody(t *testing.T) {
	prompt, err := RenderPlanPrompt(&ent.Card{Title: "Fix flaky test"}, "/p/prd.md")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Fix flaky test")
}

func TestRenderBuildPrompt(t *testing.T) {
	card := &ent.Card{
		Title:   "Add rate limiting",
		PrdPath: "/repo/.squads/prds/card-1.md",
		IssuePlan: map[string]interface{}{
			"issues": []interface{}{
				map[string]interface{}{"title": "Add limiter middleware"},
			},
		},
	}

	prompt, err := RenderBuildPrompt(card, "/repo/.squads/worktrees/core/add-rate-limiting", "squads/add-rate-limiting", "main")
	require.NoError(t, err)

	assert.Contains(t, prompt, "/repo/.squads/worktrees/core/add-rate-limiting")
	assert.Contains(t, prompt, "squads/add-rate-limiting")
	assert.Contains(t, prompt, "based on main")
	assert.Contains(t, prompt, "Add limiter middleware")
	assert.Contains(t, prompt, card.PrdPath)
}

func TestRenderCreatePRPrompt(t *testing.T) {
	card := &ent.Card{
		Title:       "Add rate limiting",
		BuildBranch: "squads/add-rate-limiting",
		BaseBranch:  "main",
	}

	prompt, err := RenderCreatePRPrompt(card)
	require.NoError(t, err)

	assert.Contains(t, prompt, "squads/add-rate-limiting")
	assert.Contains(t, prompt, "against main")
	assert.Contains(t, prompt, `"pr_url"`)
}

func TestRenderReviewPrompt(t *testing.T) {
	card := &ent.Card{
		Title: "Add rate limiting",
		PrURL: "https://github.com/acme/widgets/pull/42",
	}

	prompt, err := RenderReviewPrompt(card)
	require.NoError(t, err)

	assert.Contains(t, prompt, "https://github.com/acme/widgets/pull/42")
	assert.Contains(t, prompt, "request_changes")
}

func TestPromptArtifactRoundTrip(t *testing.T) {
	// The instructions embedded in each prompt must themselves survive
	// extraction, so an agent that echoes the example block verbatim
	// still produces a parsable artifact.
	prompt, err := RenderCreatePRPrompt(&ent.Card{Title: "x", BuildBranch: "b", BaseBranch: "main"})
	require.NoError(t, err)

	result, ok := ExtractBuildResult(prompt)
	require.True(t, ok)
	assert.Equal(t, "https://...", result["pr_url"])
}
