package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockMoveSource struct {
	mock.Mock
}

func (that *mockMoveSource) NextMove(ctx context.Context, board entity.Board) (entity.Cell, error) {
	args := that.Called(ctx, board)
	return args.Get(0).(entity.Cell), args.Error(1)
}

// scriptedSource plays the listed cells in order.
func scriptedSource(cells ...entity.Cell) *mockMoveSource {
	source := &mockMoveSource{}
	for _, cell := range cells {
		source.On("NextMove", mock.Anything, mock.Anything).Return(cell, nil).Once()
	}

	return source
}

type recordingPresenter struct {
	boards   []entity.Board
	outcomes []entity.Outcome
	finished []*entity.Match
}

func (that *recordingPresenter) ShowBoard(board entity.Board) {
	that.boards = append(that.boards, board)
}

func (that *recordingPresenter) ShowRound(outcome entity.Outcome, _ *entity.Match) {
	that.outcomes = append(that.outcomes, outcome)
}

func (that *recordingPresenter) ShowMatch(match *entity.Match) {
	that.finished = append(that.finished, match)
}

type mockRoundPlayer struct {
	mock.Mock
}

func (that *mockRoundPlayer) Play(ctx context.Context, board *entity.Board, match *entity.Match, first, second Contender) (entity.Outcome, error) {
	args := that.Called(ctx, board, match, first, second)
	return args.Get(0).(entity.Outcome), args.Error(1)
}
