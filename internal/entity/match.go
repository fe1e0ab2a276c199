package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidThreshold  = errors.New("points to win must be positive")
	ErrUndecidedOutcome  = errors.New("round is not decided")
	ErrMatchAlreadyEnded = errors.New("match already has a winner")
)

// Match is the scoreboard of a series of rounds.
type Match struct {
	ID          string  `json:"id"`
	Human       *Player `json:"human"`
	Computer    *Player `json:"computer"`
	PointsToWin int     `json:"points_to_win"`
	Rounds      int     `json:"rounds"`
	Ties        int     `json:"ties"`
	LastOpener  string  `json:"last_opener,omitempty"`
}

func NewMatch(id string, human, computer *Player, pointsToWin int) (*Match, error) {
	if pointsToWin <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, pointsToWin)
	}

	if err := ValidateMarkers(human.Mark, computer.Mark); err != nil {
		return nil, fmt.Errorf("invalid markers: %w", err)
	}

	return &Match{
		ID:          id,
		Human:       human,
		Computer:    computer,
		PointsToWin: pointsToWin,
	}, nil
}

// Record adds the result of one round to the score.
func (that *Match) Record(outcome Outcome) error {
	if that.IsOver() {
		return ErrMatchAlreadyEnded
	}

	switch outcome {
	case OutcomeHumanWins:
		that.Human.Points++
	case OutcomeComputerWins:
		that.Computer.Points++
	case OutcomeTie:
		that.Ties++
	default:
		return fmt.Errorf("%w: %s", ErrUndecidedOutcome, outcome)
	}

	that.Rounds++

	return nil
}

func (that *Match) IsOver() bool {
	return that.Human.Points >= that.PointsToWin || that.Computer.Points >= that.PointsToWin
}

// Winner returns the player that reached the threshold, nil while the match goes on.
func (that *Match) Winner() *Player {
	switch {
	case that.Human.Points >= that.PointsToWin:
		return that.Human
	case that.Computer.Points >= that.PointsToWin:
		return that.Computer
	default:
		return nil
	}
}
