package models

import (
	"github.com/buildsquads/squads/ent"
)

// Board lanes, in pipeline order.
const (
	LaneTodo   = "todo"
	LanePlan   = "plan"
	LaneBuild  = "build"
	LaneReview = "review"
	LaneDone   = "done"
)

// LaneOrder maps each lane to its pipeline position.
var LaneOrder = map[string]int{
	LaneTodo:   0,
	LanePlan:   1,
	LaneBuild:  2,
	LaneReview: 3,
	LaneDone:   4,
}

// CreateCardRequest contains fields for creating a card in todo
type CreateCardRequest struct {
	ProjectID  string `json:"project_id"`
	SquadID    string `json:"squad_id"`
	Title      string `json:"title"`
	Body       string `json:"body,omitempty"`
	BaseBranch string `json:"base_branch,omitempty"`
}

// UpdateCardRequest contains the mutable card fields
type UpdateCardRequest struct {
	Title      *string `json:"title,omitempty"`
	Body       *string `json:"body,omitempty"`
	BaseBranch *string `json:"base_branch,omitempty"`
	PrdPath    *string `json:"prd_path,omitempty"`
	Position   *int    `json:"position,omitempty"`
}

// MoveCardRequest moves a card between lanes. Version is the caller's
// last-seen card version for optimistic concurrency.
type MoveCardRequest struct {
	ToLane   string `json:"to_lane"`
	Position int    `json:"position,omitempty"`
	Version  int    `json:"version"`
}

// HumanReviewRequest records the human verdict on a card in review
type HumanReviewRequest struct {
	Status   string `json:"status"` // approved | changes_requested
	Feedback string `json:"feedback,omitempty"`
	Version  int    `json:"version"`
}

// CardFilters contains filtering options for listing cards
type CardFilters struct {
	ProjectID string `json:"project_id,omitempty"`
	SquadID   string `json:"squad_id,omitempty"`
	Lane      string `json:"lane,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// CardListResponse contains a paginated card list
type CardListResponse struct {
	Cards      []*ent.Card `json:"cards"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// BoardResponse groups a squad's cards by lane in position order
type BoardResponse struct {
	SquadID string                 `json:"squad_id"`
	Lanes   map[string][]*ent.Card `json:"lanes"`
}

// AssignLaneRequest binds an agent to a lane for a squad; a nil AgentID
// clears the assignment.
type AssignLaneRequest struct {
	Lane    string  `json:"lane"`
	AgentID *string `json:"agent_id"`
}

// IssuePlan is the structured artifact a plan-stage session produces
type IssuePlan struct {
	Issues []PlannedIssue `json:"issues"`
}

// PlannedIssue is one issue proposed by a plan session
type PlannedIssue struct {
	Title  string   `json:"title"`
	Body   string   `json:"body,omitempty"`
	Labels []string `json:"labels,omitempty"`
}

// ReviewVerdict is the structured artifact a review-stage session produces
type ReviewVerdict struct {
	Recommendation string   `json:"recommendation"` // approve | request_changes
	Summary        string   `json:"summary,omitempty"`
	Findings       []string `json:"findings,omitempty"`
}
