package entity

type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeHumanWins
	OutcomeComputerWins
	OutcomeTie
)

func (that Outcome) String() string {
	switch that {
	case OutcomeHumanWins:
		return "human wins"
	case OutcomeComputerWins:
		return "computer wins"
	case OutcomeTie:
		return "tie"
	default:
		return "undecided"
	}
}

// DetermineOutcome classifies a board. A complete line wins regardless of fullness.
func DetermineOutcome(board Board, human, computer Marker) Outcome {
	if winner, ok := board.WinningMarker(); ok {
		switch winner {
		case human:
			return OutcomeHumanWins
		case computer:
			return OutcomeComputerWins
		}
	}

	// the round goes on until all the squares are full
	if board.IsFull() {
		return OutcomeTie
	}

	return OutcomeUndecided
}
