package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game against the given input and output and plays
// sessions until the player quits, the input ends or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	humanMark, err := conf.Mark()
	if err != nil {
		return err
	}

	gameRepo, closeJournal, err := openJournal(ctx, conf.Journal)
	if err != nil {
		return err
	}

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("random source seeded", "seed", seed)

	rnd := rand.New(rand.NewPCG(seed, seed))

	gameConsole := console.New(in, out, console.WithColor(conf.ColorEnabled()))
	botService := service.NewBotService(logger, rnd, gameConsole.Writer())
	gameService := service.NewGameService(gameRepo)
	gameManager := usecase.NewGameManager(logger, gameConsole, botService, gameService)
	session := usecase.NewSession(logger, gameConsole, gameManager, humanMark)

	sessionErrCh := runSession(ctx, log, session, closeJournal)

	select {
	case err = <-sessionErrCh:
		switch {
		case errors.Is(err, apperror.ErrInputClosed):
			log.Info("input closed, shutting down")
			return nil
		case errors.Is(err, context.Canceled):
			log.Info("Application context canceled, shutting down")
			return nil
		}
		if err != nil {
			return fmt.Errorf("session failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

type sessionRunner interface {
	Run(ctx context.Context) error
}

// runSession - the journal is closed by the session goroutine once the
// session is over, so a canceled Run never closes it under a pending save.
func runSession(ctx context.Context, log *slog.Logger, session sessionRunner, closeJournal func() error) <-chan error {
	errCh := make(chan error, 1)

	go func() {
		err := session.Run(ctx)

		if closeErr := closeJournal(); closeErr != nil {
			log.Error("could not close journal", "error", closeErr)
		}

		errCh <- err
	}()

	return errCh
}

// openJournal - the repository finished games are written to, and its closer.
func openJournal(ctx context.Context, conf config.Journal) (repository.GameRepository, func() error, error) {
	switch conf.Driver {
	case config.DriverNone, "":
		return repository.NewNopGameRepository(), func() error { return nil }, nil

	case config.DriverRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis journal: %w", err)
		}
		return repository.NewGameRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite journal: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite journal: %w", err)
		}
		return repository.NewSQLiteGameRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDriver, conf.Driver)
	}
}
