package ports

import (
	"context"
	"testing"
	"time"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests verifying that a StateStore
// implementation adheres to the interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState("welcome")
		state.Transcript = append(state.Transcript, domain.Message{
			ID:        "msg-1",
			Author:    domain.AuthorBot,
			Content:   "Welcome",
			CreatedAt: time.Now().UTC(),
			Options:   []domain.Option{{ID: "ai-agent", Text: "AI Agent", NextStep: "ai-agent-pricing"}},
		})
		state.Path = append(state.Path, "ai-agent")

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.CurrentStepID, loaded.CurrentStepID)
		require.Len(t, loaded.Transcript, 1)
		assert.Equal(t, "Welcome", loaded.Transcript[0].Content)
		assert.Equal(t, domain.AuthorBot, loaded.Transcript[0].Author)
		require.Len(t, loaded.Transcript[0].Options, 1)
		assert.Equal(t, []string{"ai-agent"}, loaded.Path)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState("welcome"))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewState("welcome"))
		_ = store.Save(ctx, id2, domain.NewState("welcome"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
