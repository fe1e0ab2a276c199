package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Cell identifies one of the nine squares: row a-c, column 1-3.
type Cell int

const (
	A1 Cell = iota
	A2
	A3
	B1
	B2
	B3
	C1
	C2
	C3
)

const cellCount = 9

var ErrInvalidCell = errors.New("invalid cell")

// Cells lists every cell in the board's fixed enumeration order.
var Cells = [cellCount]Cell{A1, A2, A3, B1, B2, B3, C1, C2, C3}

var cellNames = [cellCount]string{"a1", "a2", "a3", "b1", "b2", "b3", "c1", "c2", "c3"}

func (that Cell) IsValid() bool {
	return that >= A1 && that <= C3
}

func (that Cell) String() string {
	if !that.IsValid() {
		return fmt.Sprintf("cell(%d)", int(that))
	}
	return cellNames[that]
}

// ParseCell accepts labels like "b2" or " C3 ".
func ParseCell(raw string) (Cell, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for i, cellName := range cellNames {
		if cellName == name {
			return Cell(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidCell, raw)
}
