package entity

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Marker is the symbol a side puts on the board.
type Marker string

const (
	NoMarker Marker = ""

	MarkerX Marker = "X"
	MarkerO Marker = "O"
)

var (
	ErrBlankMarker  = errors.New("marker must be a single visible symbol")
	ErrSameMarkers  = errors.New("markers must differ")
	errNotOneOfPair = errors.New("marker does not belong to the match")
)

func (that Marker) IsEmpty() bool {
	return that == NoMarker
}

func (that Marker) String() string {
	return string(that)
}

// ValidateMarkers checks the two markers of a match.
func ValidateMarkers(first, second Marker) error {
	for _, marker := range []Marker{first, second} {
		if utf8.RuneCountInString(string(marker)) != 1 || strings.TrimSpace(string(marker)) == "" {
			return fmt.Errorf("%w: %q", ErrBlankMarker, marker)
		}
	}

	if first == second {
		return fmt.Errorf("%w: both are %q", ErrSameMarkers, first)
	}

	return nil
}

// Opponent returns the marker of the other side.
func Opponent(marker, first, second Marker) (Marker, error) {
	switch marker {
	case first:
		return second, nil
	case second:
		return first, nil
	default:
		return NoMarker, fmt.Errorf("%w: %q", errNotOneOfPair, marker)
	}
}
