package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/pkg/services"
)

func reviewStatus(s card.HumanReviewStatus) *card.HumanReviewStatus {
	return &s
}

func TestCheckPrecondition(t *testing.T) {
	e := &Engine{}

	planned := map[string]any{"issues": []any{map[string]any{"title": "limiter"}}}

	tests := []struct {
		name    string
		card    *ent.Card
		toLane  card.Lane
		blocked bool
	}{
		{"plan has no gate", &ent.Card{}, card.LanePlan, false},
		{"build requires an issue plan", &ent.Card{}, card.LaneBuild, true},
		{"build rejects empty issues", &ent.Card{IssuePlan: map[string]any{"issues": []any{}}}, card.LaneBuild, true},
		{"build accepts a plan", &ent.Card{IssuePlan: planned}, card.LaneBuild, false},
		{"review requires a pr", &ent.Card{}, card.LaneReview, true},
		{"review accepts a pr", &ent.Card{PrURL: "https://github.com/acme/widgets/pull/42"}, card.LaneReview, false},
		{"done requires approval", &ent.Card{}, card.LaneDone, true},
		{"done rejects pending verdict", &ent.Card{HumanReviewStatus: reviewStatus(card.HumanReviewStatusPending)}, card.LaneDone, true},
		{"done accepts approval", &ent.Card{HumanReviewStatus: reviewStatus(card.HumanReviewStatusApproved)}, card.LaneDone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.checkPrecondition(tt.card, tt.toLane)
			if !tt.blocked {
				assert.NoError(t, err)
				return
			}
			var conflict *services.ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, services.ConflictLaneBlocked, conflict.Kind)
		})
	}
}

func TestStageArtifactDone(t *testing.T) {
	c := &ent.Card{}
	assert.False(t, stageArtifactDone(c, card.LanePlan))
	assert.False(t, stageArtifactDone(c, card.LaneBuild))
	assert.False(t, stageArtifactDone(c, card.LaneReview))

	c.IssuePlan = map[string]any{"issues": []any{map[string]any{"title": "x"}}}
	c.PrURL = "https://github.com/acme/widgets/pull/42"
	c.AiReview = map[string]any{"recommendation": "approve"}
	assert.True(t, stageArtifactDone(c, card.LanePlan))
	assert.True(t, stageArtifactDone(c, card.LaneBuild))
	assert.True(t, stageArtifactDone(c, card.LaneReview))
}

func TestStageSessionID(t *testing.T) {
	id := "session-1"
	c := &ent.Card{PlanSessionID: &id}
	assert.Equal(t, id, stageSessionID(c, card.LanePlan))
	assert.Empty(t, stageSessionID(c, card.LaneBuild))
	assert.Empty(t, stageSessionID(c, card.LaneTodo))
}
