package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	DefaultComputerDelay = time.Second * 3
)

type Config struct {
	Stage         string
	BoardSize     int
	ComputerDelay time.Duration
	Seed          int64
	LogLevel      log.Level

	// Empty means results are not recorded
	DatabaseUrl string
}

// Load reads the process environment. Outside prod a .env file in the
// working directory is loaded first if there is one.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug("no .env file found; using environment variables")
		}
	}
	return FromLookup(os.Getenv)
}

// FromLookup builds a Config from any key lookup; unset keys take
// their defaults.
func FromLookup(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:         StageDev,
		BoardSize:     mb.DefaultBoardSize,
		ComputerDelay: DefaultComputerDelay,
		Seed:          time.Now().UnixNano(),
		LogLevel:      log.InfoLevel,
		DatabaseUrl:   getenv("DATABASE_URL"),
	}

	if stage := getenv("STAGE"); stage != "" {
		if stage != StageDev && stage != StageProd {
			return Config{}, cerr.ErrStage(stage)
		}
		cfg.Stage = stage
	}

	if raw := getenv("BOARD_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("BOARD_SIZE: %w", err)
		}
		if size < 1 {
			return Config{}, fmt.Errorf("BOARD_SIZE must be positive, got %d", size)
		}
		cfg.BoardSize = size
	}

	if raw := getenv("COMPUTER_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("COMPUTER_DELAY: %w", err)
		}
		cfg.ComputerDelay = delay
	}

	if raw := getenv("SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if raw := getenv("LOG_LEVEL"); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
