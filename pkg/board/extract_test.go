package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIssuePlan(t *testing.T) {
	t.Run("fenced json block with issues array", func(t *testing.T) {
		text := "I broke the work into two issues.\n\n" +
			"```json\n" +
			`{"issues": [{"title": "Add schema", "body": "..."}, {"title": "Wire API", "body": "..."}], "summary": "two steps"}` + "\n" +
			"```\n"

		plan, ok := ExtractIssuePlan(text)
		require.True(t, ok)
		issues := plan["issues"].([]any)
		assert.Len(t, issues, 2)
		assert.Equal(t, "two steps", plan["summary"])
	})

	t.Run("last qualifying block wins", func(t *testing.T) {
		text := "First attempt:\n```json\n{\"issues\": [{\"title\": \"old\"}]}\n```\n" +
			"Revised:\n```json\n{\"issues\": [{\"title\": \"new\"}, {\"title\": \"extra\"}]}\n```\n"

		plan, ok := ExtractIssuePlan(text)
		require.True(t, ok)
		issues := plan["issues"].([]any)
		require.Len(t, issues, 2)
		first := issues[0].(map[string]any)
		assert.Equal(t, "new", first["title"])
	})

	t.Run("info string absent qualifies", func(t *testing.T) {
		text := "```\n{\"issues\": [{\"title\": \"a\"}]}\n```\n"

		plan, ok := ExtractIssuePlan(text)
		require.True(t, ok)
		assert.NotNil(t, plan["issues"])
	})

	t.Run("empty issues array still extracts", func(t *testing.T) {
		// The lane precondition, not extraction, rejects empty plans.
		plan, ok := ExtractIssuePlan("```json\n{\"issues\": []}\n```")
		require.True(t, ok)
		assert.Empty(t, plan["issues"])
	})

	t.Run("non-json info string is skipped", func(t *testing.T) {
		text := "```go\n{\"issues\": [{\"title\": \"a\"}]}\n```\n"

		_, ok := ExtractIssuePlan(text)
		assert.False(t, ok)
	})

	t.Run("unparsable block ignored silently", func(t *testing.T) {
		text := "```json\n{not json at all\n```\n" +
			"```json\n{\"issues\": [{\"title\": \"a\"}]}\n```\n"

		plan, ok := ExtractIssuePlan(text)
		require.True(t, ok)
		assert.NotNil(t, plan["issues"])
	})

	t.Run("prose json without discriminator ignored", func(t *testing.T) {
		text := "Here is some data:\n```json\n{\"foo\": 1}\n```\n"

		_, ok := ExtractIssuePlan(text)
		assert.False(t, ok)
	})

	t.Run("no blocks", func(t *testing.T) {
		_, ok := ExtractIssuePlan("just prose, no fences")
		assert.False(t, ok)
	})

	t.Run("unterminated fence yields nothing", func(t *testing.T) {
		_, ok := ExtractIssuePlan("```json\n{\"issues\": [{\"title\": \"a\"}]}\n")
		assert.False(t, ok)
	})
}

func TestExtractBuildResult(t *testing.T) {
	t.Run("pr_url present", func(t *testing.T) {
		text := "Pushed and opened a PR.\n```json\n" +
			`{"pr_url": "https://github.com/acme/widgets/pull/42", "notes": "all tests pass"}` + "\n```\n"

		result, ok := ExtractBuildResult(text)
		require.True(t, ok)
		assert.Equal(t, "https://github.com/acme/widgets/pull/42", result["pr_url"])
	})

	t.Run("empty pr_url does not qualify", func(t *testing.T) {
		_, ok := ExtractBuildResult("```json\n{\"pr_url\": \"\"}\n```")
		assert.False(t, ok)
	})

	t.Run("pr_url wrong type does not qualify", func(t *testing.T) {
		_, ok := ExtractBuildResult("```json\n{\"pr_url\": 42}\n```")
		assert.False(t, ok)
	})
}

func TestExtractReview(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		text := "The changes look solid.\n```json\n" +
			`{"recommendation": "approve", "summary": "LGTM"}` + "\n```\n"

		review, ok := ExtractReview(text)
		require.True(t, ok)
		assert.Equal(t, "approve", review["recommendation"])
		assert.Equal(t, "LGTM", review["summary"])
	})

	t.Run("request_changes and comment_only accepted", func(t *testing.T) {
		for _, rec := range []string{"request_changes", "comment_only"} {
			text := "```json\n{\"recommendation\": \"" + rec + "\"}\n```"
			review, ok := ExtractReview(text)
			require.True(t, ok, rec)
			assert.Equal(t, rec, review["recommendation"])
		}
	})

	t.Run("unknown recommendation rejected", func(t *testing.T) {
		_, ok := ExtractReview("```json\n{\"recommendation\": \"ship_it\"}\n```")
		assert.False(t, ok)
	})

	t.Run("review block after unrelated json", func(t *testing.T) {
		text := "Here is the diff summary:\n```json\n{\"foo\": 1}\n```\n" +
			"Verdict:\n```JSON\n{\"recommendation\": \"approve\"}\n```\n"

		review, ok := ExtractReview(text)
		require.True(t, ok)
		assert.Equal(t, "approve", review["recommendation"])
	})
}

func TestFencedBlocks(t *testing.T) {
	text := "intro\n```json\n{\"a\": 1}\n```\nmiddle\n```\nplain\n```\ntail"

	blocks := fencedBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "json", blocks[0].info)
	assert.Equal(t, "{\"a\": 1}", blocks[0].body)
	assert.Equal(t, "", blocks[1].info)
	assert.Equal(t, "plain", blocks[1].body)
}

func TestFencedBlocksIndented(t *testing.T) {
	// Fences indented inside a list still open and close blocks.
	text := "- result:\n  ```json\n  {\"issues\": [{\"title\": \"a\"}]}\n  ```\n"

	blocks := fencedBlocks(text)
	require.Len(t, blocks, 1)

	plan, ok := ExtractIssuePlan(text)
	require.True(t, ok)
	assert.NotNil(t, plan["issues"])
}
