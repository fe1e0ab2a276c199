package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Scoreboard opens matches kept in the repository.
type Scoreboard struct {
	logger    *slog.Logger
	matchRepo matchRepo
}

func NewScoreboard(logger *slog.Logger, matchRepo matchRepo) *Scoreboard {
	return &Scoreboard{
		logger:    logger.With("component", "scoreboard"),
		matchRepo: matchRepo,
	}
}

// Start stores a new scoreboard.
func (that *Scoreboard) Start(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Info("match created", "match", match.ID)

	return nil
}

// Resume loads an unfinished scoreboard.
func (that *Scoreboard) Resume(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if match.IsOver() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchFinished, id)
	}

	that.logger.Info("match resumed", "match", match.ID, "round", match.Rounds)

	return match, nil
}
