package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
)

var ErrInvalidProbability = errors.New("mistake probability must be within [0, 1]")

type searchEngine interface {
	BestMove(board entity.Board, acting, opponent entity.Marker) entity.Cell
}

// ComputerMover plays the engine's best move, except for an occasional random one.
type ComputerMover struct {
	logger *slog.Logger
	engine searchEngine
	random pkg.Random

	marker             entity.Marker
	opponent           entity.Marker
	mistakeProbability float64
}

func NewComputerMover(
	logger *slog.Logger,
	engine searchEngine,
	random pkg.Random,
	marker, opponent entity.Marker,
	mistakeProbability float64,
) (*ComputerMover, error) {
	if mistakeProbability < 0 || mistakeProbability > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, mistakeProbability)
	}

	if err := entity.ValidateMarkers(marker, opponent); err != nil {
		return nil, fmt.Errorf("invalid computer markers: %w", err)
	}

	return &ComputerMover{
		logger:             logger.With("component", "computer"),
		engine:             engine,
		random:             random,
		marker:             marker,
		opponent:           opponent,
		mistakeProbability: mistakeProbability,
	}, nil
}

func (that *ComputerMover) NextMove(_ context.Context, board entity.Board) (entity.Cell, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 || board.IsOver() {
		panic(fmt.Errorf("%w: computer asked to move on a finished board", apperror.ErrPreconditionViolation))
	}

	if that.random.Float64() < that.mistakeProbability {
		chosenCell := availableCells[that.random.Intn(len(availableCells))]
		that.logger.Debug("random move", "cell", chosenCell)

		return chosenCell, nil
	}

	return that.engine.BestMove(board, that.marker, that.opponent), nil
}
