package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/cli"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.With("component", "app")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Run(ctx, logger, conf, os.Stdin, termenv.NewOutput(os.Stdout))
}

// Run plays one match reading moves from input and drawing on output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, input io.Reader, output *termenv.Output) error {
	log := logger.With("component", "app")

	matchRepo, closeRepo, err := newMatchRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	return play(ctx, logger, conf, matchRepo, input, output)
}

func play(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	matchRepo repository.MatchRepository,
	input io.Reader,
	output *termenv.Output,
) error {
	log := logger.With("component", "app")

	match, err := openMatch(ctx, usecase.NewScoreboard(logger, matchRepo), conf)
	if err != nil {
		return err
	}

	random := pkg.NewRandom(conf.Seed)
	engine := tictactoe.NewEngine(logger, random)
	console := cli.NewConsole(input, output, conf.ClearScreen)

	// A resumed match keeps the markers it was started with.
	computer, err := service.NewComputerMover(logger, engine, random, match.Computer.Mark, match.Human.Mark, conf.MistakeProbability)
	if err != nil {
		return fmt.Errorf("could not create computer player: %w", err)
	}

	human := service.NewInteractiveMover(logger, console)
	round := usecase.NewRoundController(logger, console)

	manager, err := usecase.NewMatchManager(logger, matchRepo, round, console, human, computer, conf.FirstMover)
	if err != nil {
		return fmt.Errorf("could not create match manager: %w", err)
	}

	log.Info("Starting match", "match", match.ID, "points-to-win", match.PointsToWin)
	console.ShowWelcome(match)

	if _, err = manager.Play(ctx, match); err != nil {
		return fmt.Errorf("match %s interrupted: %w", match.ID, err)
	}

	console.ShowGoodbye()

	return nil
}

func openMatch(ctx context.Context, scoreboard *usecase.Scoreboard, conf *config.Config) (*entity.Match, error) {
	if conf.MatchID != "" {
		match, err := scoreboard.Resume(ctx, conf.MatchID)
		if err != nil {
			return nil, fmt.Errorf("could not resume match: %w", err)
		}

		return match, nil
	}

	match, err := entity.NewMatch(
		pkg.GenerateMatchID(),
		entity.NewHumanPlayer(conf.PlayerName, entity.Marker(conf.HumanMarker)),
		entity.NewComputerPlayer(entity.Marker(conf.ComputerMarker)),
		conf.PointsToWin,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create match: %w", err)
	}

	if err = scoreboard.Start(ctx, match); err != nil {
		return nil, fmt.Errorf("could not start match: %w", err)
	}

	return match, nil
}

func newMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryMatchRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewMatchRepository(redisStorage), redisStorage.Close, nil
}
