package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMatchRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy", func(t *testing.T) {
		// Given: an in-memory repository with a stored match
		matchRepo := NewMemoryMatchRepository()
		match := newStoredMatch(t)
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		// When: the caller keeps mutating its own match
		match.Human.Points = 99

		// Then: the stored match is unaffected
		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, retrievedMatch.Human.Points)
		assert.Equal(t, 1, retrievedMatch.Ties)
		assert.Equal(t, entity.MarkerO, retrievedMatch.Computer.Mark)
	})

	t.Run("Overwrites on update", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()
		match := newStoredMatch(t)
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		require.NoError(t, match.Record(entity.OutcomeComputerWins))
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, retrievedMatch.Rounds)
	})

	t.Run("Not found", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()

		_, err := matchRepo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)

		err = matchRepo.DeleteByID(ctx, "missing")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})

	t.Run("Delete removes the match", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()
		match := newStoredMatch(t)
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		require.NoError(t, matchRepo.DeleteByID(ctx, match.ID))

		_, err := matchRepo.GetByID(ctx, match.ID)
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})
}
