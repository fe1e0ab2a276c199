package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type moveSource interface {
	NextMove(ctx context.Context, board entity.Board) (entity.Cell, error)
}

type presenter interface {
	ShowBoard(board entity.Board)
	ShowRound(outcome entity.Outcome, match *entity.Match)
	ShowMatch(match *entity.Match)
}

// Contender is one side of a round: who plays and where its moves come from.
type Contender struct {
	Player *entity.Player
	Source moveSource
}

type RoundController struct {
	logger    *slog.Logger
	presenter presenter
}

func NewRoundController(logger *slog.Logger, presenter presenter) *RoundController {
	return &RoundController{
		logger:    logger.With("component", "round"),
		presenter: presenter,
	}
}

// Play resets the board and alternates first and second until the board is over.
func (that *RoundController) Play(ctx context.Context, board *entity.Board, match *entity.Match, first, second Contender) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "match", match.ID)

	board.Reset()
	that.presenter.ShowBoard(*board)

	current, waiting := first, second
	for {
		cell, err := current.Source.NextMove(ctx, *board)
		if err != nil {
			return entity.OutcomeUndecided, fmt.Errorf("failed to get move of %s: %w", current.Player.Name, err)
		}

		if err = board.Set(cell, current.Player.Mark); err != nil {
			return entity.OutcomeUndecided, fmt.Errorf("failed to apply move of %s: %w", current.Player.Name, err)
		}

		log.Debug("move applied", "player", current.Player.Name, "cell", cell)
		that.presenter.ShowBoard(*board)

		if board.IsOver() {
			break
		}

		current, waiting = waiting, current
	}

	outcome := entity.DetermineOutcome(*board, match.Human.Mark, match.Computer.Mark)
	log.Info("round finished", "outcome", outcome)

	return outcome, nil
}
