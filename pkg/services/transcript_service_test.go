package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/buildsquads/squads/test/database"
)

func TestTranscriptService_UpsertEntry(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTranscriptService(client.Client)
	ctx := context.Background()
	project, squad, _ := seedPipeline(t, client.Client)
	sessionID := seedSession(t, client.Client, project.ID, squad.ID).ID

	t.Run("new messages get dense sequence numbers", func(t *testing.T) {
		first, err := service.UpsertEntry(ctx, sessionID, "assistant", "msg-1",
			map[string]any{"text": "hello"})
		require.NoError(t, err)
		assert.Equal(t, 0, first.Seq)

		second, err := service.UpsertEntry(ctx, sessionID, "assistant", "msg-2",
			map[string]any{"text": "world"})
		require.NoError(t, err)
		assert.Equal(t, 1, second.Seq)
	})

	t.Run("same backend id updates in place", func(t *testing.T) {
		updated, err := service.UpsertEntry(ctx, sessionID, "assistant", "msg-1",
			map[string]any{"text": "hello again"})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Seq)
		assert.Equal(t, "hello again", updated.Payload["text"])

		page, err := service.GetTranscript(ctx, sessionID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
	})

	t.Run("validates ids", func(t *testing.T) {
		_, err := service.UpsertEntry(ctx, "", "assistant", "m", nil)
		assert.True(t, IsValidationError(err))

		_, err = service.UpsertEntry(ctx, sessionID, "assistant", "", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestTranscriptService_LocalEchoAdoption(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTranscriptService(client.Client)
	ctx := context.Background()
	project, squad, _ := seedPipeline(t, client.Client)
	sessionID := seedSession(t, client.Client, project.ID, squad.ID).ID

	// The orchestrator echoes the user turn before the backend confirms.
	local, err := service.AppendLocalEntry(ctx, sessionID, "user",
		map[string]any{"text": "please fix the login bug"})
	require.NoError(t, err)
	assert.Nil(t, local.BackendMessageID)

	found, err := service.LastLocalUserEntry(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, local.ID, found.ID)

	// The backend's echo folds into the local entry instead of
	// appending a duplicate.
	require.NoError(t, service.AdoptBackendID(ctx, local.ID, "backend-msg-1"))

	adopted, err := service.FindByBackendID(ctx, sessionID, "backend-msg-1")
	require.NoError(t, err)
	assert.Equal(t, local.ID, adopted.ID)
	assert.Equal(t, local.Seq, adopted.Seq)

	_, err = service.LastLocalUserEntry(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranscriptService_GetTranscriptPaging(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTranscriptService(client.Client)
	ctx := context.Background()
	project, squad, _ := seedPipeline(t, client.Client)
	sessionID := seedSession(t, client.Client, project.ID, squad.ID).ID

	for i := 0; i < 5; i++ {
		_, err := service.UpsertEntry(ctx, sessionID, "assistant",
			uuid.New().String(), map[string]any{"n": i})
		require.NoError(t, err)
	}

	page, err := service.GetTranscript(ctx, sessionID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalCount)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, 2, page.Entries[0].Seq)
	assert.Equal(t, 3, page.Entries[1].Seq)
}
