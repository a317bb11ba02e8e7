// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
)

// Card is the model entity for the Card schema.
type Card struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// SquadID holds the value of the "squad_id" field.
	SquadID string `json:"squad_id,omitempty"`
	// Lane holds the value of the "lane" field.
	Lane card.Lane `json:"lane,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Reserved PRD location under .squads/prds/
	PrdPath string `json:"prd_path,omitempty"`
	// Extracted plan artifact; requires an issues array
	IssuePlan map[string]interface{} `json:"issue_plan,omitempty"`
	// IssueRefs holds the value of the "issue_refs" field.
	IssueRefs []string `json:"issue_refs,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL string `json:"pr_url,omitempty"`
	// PlanAgentID holds the value of the "plan_agent_id" field.
	PlanAgentID *string `json:"plan_agent_id,omitempty"`
	// BuildAgentID holds the value of the "build_agent_id" field.
	BuildAgentID *string `json:"build_agent_id,omitempty"`
	// ReviewAgentID holds the value of the "review_agent_id" field.
	ReviewAgentID *string `json:"review_agent_id,omitempty"`
	// PlanSessionID holds the value of the "plan_session_id" field.
	PlanSessionID *string `json:"plan_session_id,omitempty"`
	// BuildSessionID holds the value of the "build_session_id" field.
	BuildSessionID *string `json:"build_session_id,omitempty"`
	// ReviewSessionID holds the value of the "review_session_id" field.
	ReviewSessionID *string `json:"review_session_id,omitempty"`
	// BuildWorktreeName holds the value of the "build_worktree_name" field.
	BuildWorktreeName string `json:"build_worktree_name,omitempty"`
	// BuildWorktreePath holds the value of the "build_worktree_path" field.
	BuildWorktreePath string `json:"build_worktree_path,omitempty"`
	// BuildBranch holds the value of the "build_branch" field.
	BuildBranch string `json:"build_branch,omitempty"`
	// BaseBranch holds the value of the "base_branch" field.
	BaseBranch string `json:"base_branch,omitempty"`
	// Extracted review artifact; requires a recommendation field
	AiReview map[string]interface{} `json:"ai_review,omitempty"`
	// AiReviewSessionID holds the value of the "ai_review_session_id" field.
	AiReviewSessionID *string `json:"ai_review_session_id,omitempty"`
	// HumanReviewStatus holds the value of the "human_review_status" field.
	HumanReviewStatus *card.HumanReviewStatus `json:"human_review_status,omitempty"`
	// HumanReviewFeedback holds the value of the "human_review_feedback" field.
	HumanReviewFeedback string `json:"human_review_feedback,omitempty"`
	// HumanReviewedAt holds the value of the "human_reviewed_at" field.
	HumanReviewedAt *time.Time `json:"human_reviewed_at,omitempty"`
	// Optimistic concurrency counter
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardQuery when eager-loading is set.
	Edges        CardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardEdges holds the relations/edges for other nodes in the graph.
type CardEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Squad holds the value of the squad edge.
	Squad *Squad `json:"squad,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// SquadOrErr returns the Squad value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardEdges) SquadOrErr() (*Squad, error) {
	if e.Squad != nil {
		return e.Squad, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: squad.Label}
	}
	return nil, &NotLoadedError{edge: "squad"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Card) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case card.FieldIssuePlan, card.FieldIssueRefs, card.FieldAiReview:
			values[i] = new([]byte)
		case card.FieldPosition, card.FieldVersion:
			values[i] = new(sql.NullInt64)
		case card.FieldID, card.FieldProjectID, card.FieldSquadID, card.FieldLane, card.FieldTitle, card.FieldBody, card.FieldPrdPath, card.FieldPrURL, card.FieldPlanAgentID, card.FieldBuildAgentID, card.FieldReviewAgentID, card.FieldPlanSessionID, card.FieldBuildSessionID, card.FieldReviewSessionID, card.FieldBuildWorktreeName, card.FieldBuildWorktreePath, card.FieldBuildBranch, card.FieldBaseBranch, card.FieldAiReviewSessionID, card.FieldHumanReviewStatus, card.FieldHumanReviewFeedback:
			values[i] = new(sql.NullString)
		case card.FieldHumanReviewedAt, card.FieldCreatedAt, card.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Card fields.
func (_m *Card) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case card.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case card.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case card.FieldSquadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field squad_id", values[i])
			} else if value.Valid {
				_m.SquadID = value.String
			}
		case card.FieldLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lane", values[i])
			} else if value.Valid {
				_m.Lane = card.Lane(value.String)
			}
		case card.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case card.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case card.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case card.FieldPrdPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prd_path", values[i])
			} else if value.Valid {
				_m.PrdPath = value.String
			}
		case card.FieldIssuePlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issue_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IssuePlan); err != nil {
					return fmt.Errorf("unmarshal field issue_plan: %w", err)
				}
			}
		case card.FieldIssueRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issue_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IssueRefs); err != nil {
					return fmt.Errorf("unmarshal field issue_refs: %w", err)
				}
			}
		case card.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = value.String
			}
		case card.FieldPlanAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_agent_id", values[i])
			} else if value.Valid {
				_m.PlanAgentID = new(string)
				*_m.PlanAgentID = value.String
			}
		case card.FieldBuildAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_agent_id", values[i])
			} else if value.Valid {
				_m.BuildAgentID = new(string)
				*_m.BuildAgentID = value.String
			}
		case card.FieldReviewAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_agent_id", values[i])
			} else if value.Valid {
				_m.ReviewAgentID = new(string)
				*_m.ReviewAgentID = value.String
			}
		case card.FieldPlanSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_session_id", values[i])
			} else if value.Valid {
				_m.PlanSessionID = new(string)
				*_m.PlanSessionID = value.String
			}
		case card.FieldBuildSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_session_id", values[i])
			} else if value.Valid {
				_m.BuildSessionID = new(string)
				*_m.BuildSessionID = value.String
			}
		case card.FieldReviewSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_session_id", values[i])
			} else if value.Valid {
				_m.ReviewSessionID = new(string)
				*_m.ReviewSessionID = value.String
			}
		case card.FieldBuildWorktreeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_worktree_name", values[i])
			} else if value.Valid {
				_m.BuildWorktreeName = value.String
			}
		case card.FieldBuildWorktreePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_worktree_path", values[i])
			} else if value.Valid {
				_m.BuildWorktreePath = value.String
			}
		case card.FieldBuildBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_branch", values[i])
			} else if value.Valid {
				_m.BuildBranch = value.String
			}
		case card.FieldBaseBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_branch", values[i])
			} else if value.Valid {
				_m.BaseBranch = value.String
			}
		case card.FieldAiReview:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_review", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiReview); err != nil {
					return fmt.Errorf("unmarshal field ai_review: %w", err)
				}
			}
		case card.FieldAiReviewSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_review_session_id", values[i])
			} else if value.Valid {
				_m.AiReviewSessionID = new(string)
				*_m.AiReviewSessionID = value.String
			}
		case card.FieldHumanReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_review_status", values[i])
			} else if value.Valid {
				_m.HumanReviewStatus = new(card.HumanReviewStatus)
				*_m.HumanReviewStatus = card.HumanReviewStatus(value.String)
			}
		case card.FieldHumanReviewFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_review_feedback", values[i])
			} else if value.Valid {
				_m.HumanReviewFeedback = value.String
			}
		case card.FieldHumanReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field human_reviewed_at", values[i])
			} else if value.Valid {
				_m.HumanReviewedAt = new(time.Time)
				*_m.HumanReviewedAt = value.Time
			}
		case card.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case card.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case card.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Card.
// This includes values selected through modifiers, order, etc.
func (_m *Card) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Card entity.
func (_m *Card) QueryProject() *ProjectQuery {
	return NewCardClient(_m.config).QueryProject(_m)
}

// QuerySquad queries the "squad" edge of the Card entity.
func (_m *Card) QuerySquad() *SquadQuery {
	return NewCardClient(_m.config).QuerySquad(_m)
}

// Update returns a builder for updating this Card.
// Note that you need to call Card.Unwrap() before calling this method if this Card
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Card) Update() *CardUpdateOne {
	return NewCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Card entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Card) Unwrap() *Card {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Card is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Card) String() string {
	var builder strings.Builder
	builder.WriteString("Card(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("squad_id=")
	builder.WriteString(_m.SquadID)
	builder.WriteString(", ")
	builder.WriteString("lane=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lane))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("prd_path=")
	builder.WriteString(_m.PrdPath)
	builder.WriteString(", ")
	builder.WriteString("issue_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssuePlan))
	builder.WriteString(", ")
	builder.WriteString("issue_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssueRefs))
	builder.WriteString(", ")
	builder.WriteString("pr_url=")
	builder.WriteString(_m.PrURL)
	builder.WriteString(", ")
	if v := _m.PlanAgentID; v != nil {
		builder.WriteString("plan_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuildAgentID; v != nil {
		builder.WriteString("build_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewAgentID; v != nil {
		builder.WriteString("review_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanSessionID; v != nil {
		builder.WriteString("plan_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuildSessionID; v != nil {
		builder.WriteString("build_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewSessionID; v != nil {
		builder.WriteString("review_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("build_worktree_name=")
	builder.WriteString(_m.BuildWorktreeName)
	builder.WriteString(", ")
	builder.WriteString("build_worktree_path=")
	builder.WriteString(_m.BuildWorktreePath)
	builder.WriteString(", ")
	builder.WriteString("build_branch=")
	builder.WriteString(_m.BuildBranch)
	builder.WriteString(", ")
	builder.WriteString("base_branch=")
	builder.WriteString(_m.BaseBranch)
	builder.WriteString(", ")
	builder.WriteString("ai_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiReview))
	builder.WriteString(", ")
	if v := _m.AiReviewSessionID; v != nil {
		builder.WriteString("ai_review_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HumanReviewStatus; v != nil {
		builder.WriteString("human_review_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("human_review_feedback=")
	builder.WriteString(_m.HumanReviewFeedback)
	builder.WriteString(", ")
	if v := _m.HumanReviewedAt; v != nil {
		builder.WriteString("human_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cards is a parsable slice of Card.
type Cards []*Card
