package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockCellReader struct {
	mock.Mock
}

func (that *mockCellReader) ReadCell(ctx context.Context, board entity.Board, valid []entity.Cell, retry bool) (string, error) {
	args := that.Called(ctx, board, valid, retry)
	return args.String(0), args.Error(1)
}

type mockSearchEngine struct {
	mock.Mock
}

func (that *mockSearchEngine) BestMove(board entity.Board, acting, opponent entity.Marker) entity.Cell {
	args := that.Called(board, acting, opponent)
	return args.Get(0).(entity.Cell)
}
