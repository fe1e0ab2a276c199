package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardOf(t *testing.T, squares map[Cell]Marker) *Board {
	t.Helper()

	board := NewBoard()
	for cell, marker := range squares {
		require.NoError(t, board.Set(cell, marker))
	}

	return board
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("New board has every cell empty in enumeration order", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: all nine cells come back in a1..c3 order
		assert.Equal(t, []Cell{A1, A2, A3, B1, B2, B3, C1, C2, C3}, cells)
	})

	t.Run("Marked cells are skipped", func(t *testing.T) {
		// Given: a board with a1 and b2 marked
		board := boardOf(t, map[Cell]Marker{A1: MarkerX, B2: MarkerO})

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: the marked cells are missing and the order is kept
		assert.Equal(t, []Cell{A2, A3, B1, B3, C1, C2, C3}, cells)
	})
}

func TestBoard_Set(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X marks b2
		err := board.Set(B2, MarkerX)

		// Then: the square holds X
		require.NoError(t, err)
		assert.Equal(t, MarkerX, board.Square(B2))
	})

	t.Run("Error on cell already marked", func(t *testing.T) {
		// Given: a board where a1 is marked by X
		board := boardOf(t, map[Cell]Marker{A1: MarkerX})
		before := *board

		// When: O tries to mark a1
		err := board.Set(A1, MarkerO)

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, *board)
	})

	t.Run("Error on unrecognized cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a cell outside the grid is marked
		err := board.Set(Cell(20), MarkerX)

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Len(t, board.EmptyCells(), 9)
	})

	t.Run("Error on negative cell", func(t *testing.T) {
		board := NewBoard()

		err := board.Set(Cell(-1), MarkerX)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Error on empty marker", func(t *testing.T) {
		board := NewBoard()

		err := board.Set(A1, NoMarker)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.True(t, board.IsEmptyCell(A1))
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with some moves
	board := boardOf(t, map[Cell]Marker{A1: MarkerX, C3: MarkerO})

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty again
	assert.Len(t, board.EmptyCells(), 9)
	assert.Equal(t, [9]Marker{}, board.Squares())
}

func TestBoard_With(t *testing.T) {
	// Given: a board with a1 marked
	board := boardOf(t, map[Cell]Marker{A1: MarkerX})
	emptyBefore := board.EmptyCells()

	// When: a hypothetical board is derived
	next := board.With(B2, MarkerO)

	// Then: the hypothetical board has the move
	assert.Equal(t, MarkerO, next.Square(B2))
	assert.Equal(t, MarkerX, next.Square(A1))

	// Then: the original board is untouched
	assert.Equal(t, emptyBefore, board.EmptyCells())
	assert.True(t, board.IsEmptyCell(B2))
}

func TestBoard_WinningMarker(t *testing.T) {
	testCases := []struct {
		name    string
		squares map[Cell]Marker
		want    Marker
		won     bool
	}{
		{
			name:    "Top row",
			squares: map[Cell]Marker{A1: MarkerX, A2: MarkerX, A3: MarkerX, B1: MarkerO, B2: MarkerO},
			want:    MarkerX,
			won:     true,
		},
		{
			name:    "Middle column",
			squares: map[Cell]Marker{A2: MarkerO, B2: MarkerO, C2: MarkerO, A1: MarkerX, C3: MarkerX},
			want:    MarkerO,
			won:     true,
		},
		{
			name:    "Main diagonal",
			squares: map[Cell]Marker{A1: MarkerX, B2: MarkerX, C3: MarkerX},
			want:    MarkerX,
			won:     true,
		},
		{
			name:    "Anti diagonal",
			squares: map[Cell]Marker{A3: MarkerO, B2: MarkerO, C1: MarkerO},
			want:    MarkerO,
			won:     true,
		},
		{
			name:    "Mixed line is not a win",
			squares: map[Cell]Marker{A1: MarkerX, A2: MarkerO, A3: MarkerX},
			want:    NoMarker,
			won:     false,
		},
		{
			name:    "Empty board",
			squares: map[Cell]Marker{},
			want:    NoMarker,
			won:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board := boardOf(t, tc.squares)

			marker, won := board.WinningMarker()

			assert.Equal(t, tc.want, marker)
			assert.Equal(t, tc.won, won)
		})
	}
}

func TestBoard_IsFullAndIsOver(t *testing.T) {
	t.Run("Full board without a line is over", func(t *testing.T) {
		// Given: a drawn board
		board := boardOf(t, map[Cell]Marker{
			A1: MarkerX, A2: MarkerO, A3: MarkerX,
			B1: MarkerX, B2: MarkerO, B3: MarkerO,
			C1: MarkerO, C2: MarkerX, C3: MarkerX,
		})

		// Then: it is full, over and has no winner
		assert.True(t, board.IsFull())
		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsOver())
		_, won := board.WinningMarker()
		assert.False(t, won)
	})

	t.Run("Line on a partial board is over", func(t *testing.T) {
		board := boardOf(t, map[Cell]Marker{A1: MarkerO, B1: MarkerO, C1: MarkerO, A2: MarkerX, B2: MarkerX})

		assert.False(t, board.IsFull())
		assert.NotEmpty(t, board.EmptyCells())
		assert.True(t, board.IsOver())
	})

	t.Run("Partial board without a line goes on", func(t *testing.T) {
		board := boardOf(t, map[Cell]Marker{A1: MarkerX, B2: MarkerO})

		assert.False(t, board.IsFull())
		assert.False(t, board.IsOver())
	})
}

// Every reachable position holds at most one winning marker and is full
// exactly when it has no empty cell.
func TestBoard_ReachablePositions(t *testing.T) {
	var walk func(board Board, next Marker)

	positions := 0
	walk = func(board Board, next Marker) {
		positions++

		winners := map[Marker]bool{}
		for _, line := range WinLines {
			a, b, c := board.Square(line[0]), board.Square(line[1]), board.Square(line[2])
			if !a.IsEmpty() && a == b && b == c {
				winners[a] = true
			}
		}
		require.LessOrEqual(t, len(winners), 1)
		require.Equal(t, board.IsFull(), len(board.EmptyCells()) == 0)

		if board.IsOver() {
			return
		}

		following := MarkerO
		if next == MarkerO {
			following = MarkerX
		}

		for _, cell := range board.EmptyCells() {
			walk(board.With(cell, next), following)
		}
	}

	walk(Board{}, MarkerX)

	// 549946 nodes in the full tic-tac-toe game tree
	assert.Equal(t, 549946, positions)
}
