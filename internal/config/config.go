package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var (
	ErrUnknownStorage  = errors.New("unknown storage")
	ErrUnknownLogLevel = errors.New("unknown log-level")
)

// Zero is a valid setting for these, so Load pre-fills them instead of tagging env-default.
const (
	defaultMistakeProbability = 0.1
	defaultClearScreen        = true
)

type Config struct {
	LogLevel           string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	PlayerName         string  `yaml:"player-name" env:"TTT_PLAYER_NAME" env-default:"Player"`
	HumanMarker        string  `yaml:"human-marker" env:"TTT_HUMAN_MARKER" env-default:"X"`
	ComputerMarker     string  `yaml:"computer-marker" env:"TTT_COMPUTER_MARKER" env-default:"O"`
	PointsToWin        int     `yaml:"points-to-win" env:"TTT_POINTS_TO_WIN" env-default:"3"`
	MistakeProbability float64 `yaml:"mistake-probability" env:"TTT_MISTAKE_PROBABILITY"`
	FirstMover         string  `yaml:"first-mover" env:"TTT_FIRST_MOVER" env-default:"human"`
	Seed               int64   `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	ClearScreen        bool    `yaml:"clear-screen" env:"TTT_CLEAR_SCREEN"`
	Storage            string  `yaml:"storage" env:"TTT_STORAGE" env-default:"memory"`
	MatchID            string  `yaml:"match-id" env:"TTT_MATCH_ID" env-default:""`
	Redis              Redis   `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load configuration from the yaml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{
		MistakeProbability: defaultMistakeProbability,
		ClearScreen:        defaultClearScreen,
	}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := entity.ValidateMarkers(entity.Marker(that.HumanMarker), entity.Marker(that.ComputerMarker)); err != nil {
		return fmt.Errorf("human-marker/computer-marker: %w", err)
	}

	if that.PointsToWin <= 0 {
		return fmt.Errorf("points-to-win: %w: %d", entity.ErrInvalidThreshold, that.PointsToWin)
	}

	if that.MistakeProbability < 0 || that.MistakeProbability > 1 {
		return fmt.Errorf("mistake-probability: %w: %v", service.ErrInvalidProbability, that.MistakeProbability)
	}

	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}

	switch that.FirstMover {
	case usecase.FirstMoverHuman, usecase.FirstMoverComputer, usecase.FirstMoverAlternate:
	default:
		return fmt.Errorf("first-mover: %w: %q", usecase.ErrUnknownFirstMover, that.FirstMover)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
