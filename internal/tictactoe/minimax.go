package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreTie  = 0
)

// Engine picks the computer's move with an exhaustive minimax search.
type Engine struct {
	logger *slog.Logger
	random pkg.Random
}

func NewEngine(logger *slog.Logger, random pkg.Random) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),
		random: random,
	}
}

// BestMove returns one of the best cells for acting; ties are broken at random.
// It panics when the board is already over.
func (that *Engine) BestMove(board entity.Board, acting, opponent entity.Marker) entity.Cell {
	scores := that.Scores(board, acting, opponent)

	best := make([]entity.Cell, 0, len(scores))
	bestScore := scoreLoss - 1

	// walk in enumeration order so a seeded tie-break is reproducible
	for _, cell := range board.EmptyCells() {
		switch score := scores[cell]; {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], cell)
		case score == bestScore:
			best = append(best, cell)
		}
	}

	chosen := best[that.random.Intn(len(best))]

	that.logger.Debug("best move chosen",
		"marker", acting,
		"cell", chosen,
		"score", bestScore,
		"candidates", len(best),
	)

	return chosen
}

// Scores rates every empty cell for acting.
func (that *Engine) Scores(board entity.Board, acting, opponent entity.Marker) map[entity.Cell]int {
	mustBeOpen(board)
	mustBePair(acting, opponent)

	empty := board.EmptyCells()
	scores := make(map[entity.Cell]int, len(empty))

	for _, cell := range empty {
		scores[cell] = minimax(board.With(cell, acting), opponent, acting, opponent)
	}

	return scores
}

// Minimax scores a board from the point of view of maximizing, with next to play.
// A win for maximizing is +1, a win for minimizing -1, anything else 0.
// There is no pruning and no memo: the whole remaining tree is searched.
// A won board is scored as is, a full board without a winner panics.
func Minimax(board entity.Board, next, maximizing, minimizing entity.Marker) int {
	mustBePair(maximizing, minimizing)
	mustNotBeDrawn(board)

	if _, err := entity.Opponent(next, maximizing, minimizing); err != nil {
		panic(fmt.Errorf("%w: %w", apperror.ErrPreconditionViolation, err))
	}

	return minimax(board, next, maximizing, minimizing)
}

func minimax(board entity.Board, next, maximizing, minimizing entity.Marker) int {
	if board.IsOver() {
		return terminalScore(board, maximizing, minimizing)
	}

	following := maximizing
	if next == maximizing {
		following = minimizing
	}

	var best int
	for i, cell := range board.EmptyCells() {
		score := minimax(board.With(cell, next), following, maximizing, minimizing)

		switch {
		case i == 0:
			best = score
		case next == maximizing && score > best:
			best = score
		case next == minimizing && score < best:
			best = score
		}
	}

	return best
}

func terminalScore(board entity.Board, maximizing, minimizing entity.Marker) int {
	winner, ok := board.WinningMarker()
	if !ok {
		return scoreTie
	}

	switch winner {
	case maximizing:
		return scoreWin
	case minimizing:
		return scoreLoss
	default:
		return scoreTie
	}
}

func mustBeOpen(board entity.Board) {
	if board.IsOver() {
		panic(fmt.Errorf("%w: search on a finished board", apperror.ErrPreconditionViolation))
	}
}

func mustNotBeDrawn(board entity.Board) {
	if _, won := board.WinningMarker(); board.IsFull() && !won {
		panic(fmt.Errorf("%w: search on a full board", apperror.ErrPreconditionViolation))
	}
}

func mustBePair(first, second entity.Marker) {
	if err := entity.ValidateMarkers(first, second); err != nil {
		panic(fmt.Errorf("%w: %w", apperror.ErrPreconditionViolation, err))
	}
}
