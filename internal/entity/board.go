package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// WinLines are the rows, columns and diagonals, in scan order.
var WinLines = [8][3]Cell{
	{A1, A2, A3},
	{B1, B2, B3},
	{C1, C2, C3},
	{A1, B1, C1},
	{A2, B2, C2},
	{A3, B3, C3},
	{A1, B2, C3},
	{A3, B2, C1},
}

// Board is a 3x3 grid of squares. It is a value type: copies never share state.
type Board struct {
	squares [cellCount]Marker
}

func NewBoard() *Board {
	return &Board{}
}

// Reset empties every square.
func (that *Board) Reset() {
	that.squares = [cellCount]Marker{}
}

// Square returns the marker on the cell, NoMarker when empty.
func (that Board) Square(cell Cell) Marker {
	return that.squares[cell]
}

// Squares is a row-major snapshot for rendering.
func (that Board) Squares() [cellCount]Marker {
	return that.squares
}

// EmptyCells lists the free cells in enumeration order.
func (that Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, cellCount)
	for _, cell := range Cells {
		if that.squares[cell].IsEmpty() {
			cells = append(cells, cell)
		}
	}

	return cells
}

// IsEmptyCell reports whether the cell is recognized and free.
func (that Board) IsEmptyCell(cell Cell) bool {
	return cell.IsValid() && that.squares[cell].IsEmpty()
}

// Set commits a move. The board is untouched when it fails.
func (that *Board) Set(cell Cell, marker Marker) error {
	if !cell.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, cell)
	}

	if marker.IsEmpty() {
		return fmt.Errorf("%w: empty marker for %s", apperror.ErrInvalidMove, cell)
	}

	if current := that.squares[cell]; !current.IsEmpty() {
		return fmt.Errorf("%w: %s is already marked by %s", apperror.ErrInvalidMove, cell, current)
	}

	that.squares[cell] = marker

	return nil
}

// With returns a copy of the board with the cell marked; the receiver is unchanged.
func (that Board) With(cell Cell, marker Marker) Board {
	that.squares[cell] = marker
	return that
}

// WinningMarker returns the marker of the first complete line.
func (that Board) WinningMarker() (Marker, bool) {
	for _, line := range WinLines {
		a, b, c := that.squares[line[0]], that.squares[line[1]], that.squares[line[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a, true
		}
	}

	return NoMarker, false
}

func (that Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

// IsOver is true once the board is full or holds a complete line.
func (that Board) IsOver() bool {
	if that.IsFull() {
		return true
	}

	_, won := that.WinningMarker()

	return won
}
