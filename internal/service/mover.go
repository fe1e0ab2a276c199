package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveSource produces the next cell for one side of the board.
type MoveSource interface {
	NextMove(ctx context.Context, board entity.Board) (entity.Cell, error)
}

var (
	_ MoveSource = (*InteractiveMover)(nil)
	_ MoveSource = (*ComputerMover)(nil)
)
