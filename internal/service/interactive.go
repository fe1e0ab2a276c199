package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// cellReader supplies raw cell labels, e.g. from a console prompt.
// valid lists the cells accepted for this prompt.
type cellReader interface {
	ReadCell(ctx context.Context, board entity.Board, valid []entity.Cell, retry bool) (string, error)
}

// InteractiveMover asks its reader until it gets a free cell.
type InteractiveMover struct {
	logger *slog.Logger
	reader cellReader
}

func NewInteractiveMover(logger *slog.Logger, reader cellReader) *InteractiveMover {
	return &InteractiveMover{
		logger: logger.With("component", "interactive"),
		reader: reader,
	}
}

// NextMove never fails on bad input; only reader errors and cancellation end it.
func (that *InteractiveMover) NextMove(ctx context.Context, board entity.Board) (entity.Cell, error) {
	log := that.logger.With("method", "NextMove")

	valid := board.EmptyCells()
	if len(valid) == 0 {
		panic(fmt.Errorf("%w: no free cell to ask for", apperror.ErrPreconditionViolation))
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("move cancelled: %w", err)
		}

		raw, err := that.reader.ReadCell(ctx, board, valid, attempt > 0)
		if err != nil {
			return 0, fmt.Errorf("failed to read cell: %w", err)
		}

		cell, err := entity.ParseCell(raw)
		if err != nil {
			log.Debug("unparseable cell", "input", raw)
			continue
		}

		if board.IsEmptyCell(cell) {
			return cell, nil
		}

		log.Debug("cell is not free", "cell", cell)
	}
}
