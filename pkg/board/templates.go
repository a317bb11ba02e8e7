package board

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/buildsquads/squads/ent"
)

// Stage prompts are data, not code: fixed templates the engine fills
// from the card. Each one tells the agent exactly which fenced JSON
// artifact to finish with, because that block is what extraction reads.

var promptTemplates = template.Must(template.New("prompts").Parse(`
{{define "plan"}}You are the planning agent for a development squad.

Card: {{.Title}}
{{if .Body}}
{{.Body}}
{{end}}
Break this card into concrete, independently mergeable issues. Write a
product requirements document to {{.PRDPath}} covering scope, approach,
and open questions.

When you are done, output a single fenced json code block of the form:

` + "```" + `json
{"issues": [{"title": "...", "body": "...", "labels": []}], "prd_path": "{{.PRDPath}}"}
` + "```" + `

The issues array must not be empty.{{end}}

{{define "build"}}You are the build agent for a development squad.

Card: {{.Title}}

Work in the git worktree at {{.WorktreePath}} on branch {{.Branch}}
(based on {{.BaseBranch}}). The approved plan:

{{.IssuePlan}}
{{if .PRDPath}}
The PRD is at {{.PRDPath}}; follow it.
{{end}}
Implement the plan, commit as you go, and push the branch.{{end}}

{{define "create_pr"}}The implementation on branch {{.Branch}} is ready.
Open a pull request against {{.BaseBranch}} titled after the card
"{{.Title}}", with a description summarizing the change.

When the PR exists, output a single fenced json code block:

` + "```" + `json
{"pr_url": "https://..."}
` + "```" + `{{end}}

{{define "review"}}You are the review agent for a development squad.

Card: {{.Title}}

Review the pull request at {{.PRURL}}. Check correctness against the
card, test coverage, and regressions. Leave findings as a list.

Finish with a single fenced json code block:

` + "```" + `json
{"recommendation": "approve", "summary": "...", "findings": []}
` + "```" + `

recommendation must be one of: approve, request_changes, comment_only.{{end}}
`))

// promptData carries every placeholder any stage template can use.
type promptData struct {
	Title        string
	Body         string
	PRDPath      string
	WorktreePath string
	Branch       string
	BaseBranch   string
	PRURL        string
	IssuePlan    string
}

func renderPrompt(name string, data promptData) (string, error) {
	var buf strings.Builder
	if err := promptTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// RenderPlanPrompt builds the prompt for a card entering the plan lane.
func RenderPlanPrompt(c *ent.Card, prdPath string) (string, error) {
	return renderPrompt("plan", promptData{
		Title:   c.Title,
		Body:    c.Body,
		PRDPath: prdPath,
	})
}

// RenderBuildPrompt builds the prompt for a card entering the build lane.
func RenderBuildPrompt(c *ent.Card, worktreePath, branch, baseBranch string) (string, error) {
	plan, err := json.MarshalIndent(c.IssuePlan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode issue plan: %w", err)
	}
	return renderPrompt("build", promptData{
		Title:        c.Title,
		PRDPath:      c.PrdPath,
		WorktreePath: worktreePath,
		Branch:       branch,
		BaseBranch:   baseBranch,
		IssuePlan:    string(plan),
	})
}

// RenderCreatePRPrompt builds the follow-up prompt asking the build
// agent to open the pull request.
func RenderCreatePRPrompt(c *ent.Card) (string, error) {
	return renderPrompt("create_pr", promptData{
		Title:      c.Title,
		Branch:     c.BuildBranch,
		BaseBranch: c.BaseBranch,
	})
}

// RenderReviewPrompt builds the prompt for a card entering the review lane.
func RenderReviewPrompt(c *ent.Card) (string, error) {
	return renderPrompt("review", promptData{
		Title: c.Title,
		PRURL: c.PrURL,
	})
}
