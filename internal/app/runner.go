package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal/config"
	"github.com/saeidalz13/battleship-solo/internal/console"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const humanPlayerName = "Player"

// Recorder stores the outcome of a finished match.
type Recorder interface {
	RecordMatch(ctx context.Context, match *mb.Match) error
}

type Runner struct {
	stage         string
	boardSize     int
	computerDelay time.Duration
	seed          int64
	in            io.Reader
	out           io.Writer
	recorder      Recorder
	logger        *log.Logger
	MatchManager  mb.MatchManager
}

type Option func(*Runner) error

func NewRunner(optFuncs ...Option) *Runner {
	runner := Runner{
		stage:         config.StageDev,
		boardSize:     mb.DefaultBoardSize,
		computerDelay: config.DefaultComputerDelay,
		seed:          time.Now().UnixNano(),
		in:            os.Stdin,
		out:           os.Stdout,
		logger:        log.Default(),
		MatchManager:  mb.NewBattleshipMatchManager(),
	}

	for _, opt := range optFuncs {
		if err := opt(&runner); err != nil {
			panic(err)
		}
	}
	return &runner
}

func WithConfig(cfg config.Config) Option {
	return func(r *Runner) error {
		for _, opt := range []Option{
			WithStage(cfg.Stage),
			WithBoardSize(cfg.BoardSize),
			WithComputerDelay(cfg.ComputerDelay),
			WithSeed(cfg.Seed),
		} {
			if err := opt(r); err != nil {
				return err
			}
		}
		return nil
	}
}

func WithStage(stage string) Option {
	return func(r *Runner) error {
		if stage != config.StageProd && stage != config.StageDev {
			return cerr.ErrStage(stage)
		}
		r.stage = stage
		return nil
	}
}

func WithBoardSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			return fmt.Errorf("invalid board size: %d", size)
		}
		r.boardSize = size
		return nil
	}
}

func WithComputerDelay(delay time.Duration) Option {
	return func(r *Runner) error {
		if delay < 0 {
			return fmt.Errorf("negative computer delay: %s", delay)
		}
		r.computerDelay = delay
		return nil
	}
}

func WithSeed(seed int64) Option {
	return func(r *Runner) error {
		r.seed = seed
		return nil
	}
}

func WithInput(in io.Reader) Option {
	return func(r *Runner) error {
		r.in = in
		return nil
	}
}

func WithOutput(out io.Writer) Option {
	return func(r *Runner) error {
		r.out = out
		return nil
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(r *Runner) error {
		r.recorder = recorder
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) error {
		r.logger = logger
		return nil
	}
}

func (r *Runner) Stage() string {
	return r.stage
}

// Run plays one full match between the console player and the
// computer, the console player shooting first. The context only
// bounds recording the result.
func (r *Runner) Run(ctx context.Context) (mb.MatchStatus, error) {
	rng := rand.New(rand.NewSource(r.seed))
	placer := mb.NewFleetPlacer(rng, mb.WithBoardSize(r.boardSize), mb.WithPlacerLogger(r.logger))

	humanBoard, err := placer.Generate()
	if err != nil {
		return mb.MatchStatusOngoing, err
	}
	humanBoard.SetRevealShips(true)

	computerBoard, err := placer.Generate()
	if err != nil {
		return mb.MatchStatusOngoing, err
	}

	human := console.NewHumanPlayer(humanPlayerName, r.in, r.out)
	computer := mb.NewComputerPlayer(mb.NewTargetingStrategy(rng, r.boardSize), r.computerDelay)

	printer := console.NewPrinter(r.out)
	printer.Greet(r.boardSize)

	match := r.MatchManager.CreateMatch(
		mb.NewSide(human, humanBoard),
		mb.NewSide(computer, computerBoard),
		mb.WithObserver(printer),
		mb.WithMatchLogger(r.logger),
	)
	defer r.MatchManager.TerminateMatch(match.Uuid())

	r.logger.Info("match started", "match", match.Uuid(), "stage", r.stage, "board_size", r.boardSize, "seed", r.seed)

	status, err := match.Play()
	if err != nil {
		r.logger.Warn("match aborted", "match", match.Uuid(), "err", err)
		return status, err
	}

	if r.recorder != nil {
		recordCtx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
		defer cancel()

		// for now a failed record does not spoil the finished match
		if err := r.recorder.RecordMatch(recordCtx, match); err != nil {
			r.logger.Error("failed to record match result", "match", match.Uuid(), "err", err)
		}
	}

	return status, nil
}
