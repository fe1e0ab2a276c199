package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	FirstMoverHuman     = "human"
	FirstMoverComputer  = "computer"
	FirstMoverAlternate = "alternate"
)

var ErrUnknownFirstMover = errors.New("unknown first mover")

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type roundPlayer interface {
	Play(ctx context.Context, board *entity.Board, match *entity.Match, first, second Contender) (entity.Outcome, error)
}

// MatchManager plays rounds until one side reaches the points threshold.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	round     roundPlayer
	presenter presenter

	human      moveSource
	computer   moveSource
	firstMover string
}

func NewMatchManager(
	logger *slog.Logger,
	matchRepo matchRepo,
	round roundPlayer,
	presenter presenter,
	human, computer moveSource,
	firstMover string,
) (*MatchManager, error) {
	switch firstMover {
	case FirstMoverHuman, FirstMoverComputer, FirstMoverAlternate:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFirstMover, firstMover)
	}

	return &MatchManager{
		logger:     logger.With("component", "match"),
		matchRepo:  matchRepo,
		round:      round,
		presenter:  presenter,
		human:      human,
		computer:   computer,
		firstMover: firstMover,
	}, nil
}

func (that *MatchManager) Play(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	log := that.logger.With("method", "Play", "match", match.ID)

	if match.IsOver() {
		return match, apperror.ErrMatchFinished
	}

	board := entity.NewBoard()

	for !match.IsOver() {
		first, second := that.contenders(match)

		outcome, err := that.round.Play(ctx, board, match, first, second)
		if err != nil {
			return match, fmt.Errorf("failed to play round %d: %w", match.Rounds+1, err)
		}

		if err = match.Record(outcome); err != nil {
			return match, fmt.Errorf("failed to record round: %w", err)
		}
		match.LastOpener = first.Player.Kind

		if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
			return match, fmt.Errorf("failed to update match: %w", err)
		}

		log.Info("score updated",
			"round", match.Rounds,
			"human", match.Human.Points,
			"computer", match.Computer.Points,
		)
		that.presenter.ShowRound(outcome, match)
	}

	that.presenter.ShowMatch(match)
	that.deleteMatch(ctx, match)

	return match, nil
}

func (that *MatchManager) contenders(match *entity.Match) (Contender, Contender) {
	human := Contender{Player: match.Human, Source: that.human}
	computer := Contender{Player: match.Computer, Source: that.computer}

	switch that.firstMover {
	case FirstMoverComputer:
		return computer, human
	case FirstMoverAlternate:
		if match.LastOpener == entity.HumanKind {
			return computer, human
		}
		return human, computer
	default:
		return human, computer
	}
}

func (that *MatchManager) deleteMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "deleteMatch")

	if err := that.matchRepo.DeleteByID(ctx, match.ID); err != nil {
		log.Error("failed to delete match", "error", err)
		return
	}

	log.Info("match deleted", "match", match.ID)
}
