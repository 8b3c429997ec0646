package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/planview/internal/cli"
	"github.com/alexanderramin/planview/internal/config"
	"github.com/alexanderramin/planview/internal/db"
	"github.com/alexanderramin/planview/internal/repository"
	"github.com/alexanderramin/planview/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			err = errors.Join(err, closers[i]())
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the tab prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Load = func(cfgFile string, tui bool) error {
		cfg, err := config.Load(viper.New(), cfgFile)
		if err != nil {
			return err
		}

		// The TUI owns the terminal: logs go to log.file or nowhere.
		var fallback io.Writer = os.Stderr
		if tui {
			fallback = nil
		}
		logger, closeLog, err := config.NewLogger(cfg.Log, fallback)
		if err != nil {
			return err
		}
		closers = append(closers, closeLog)

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		closers = append(closers, database.Close)

		uow := db.NewSQLiteUnitOfWork(database)
		app.Plans = service.NewPlanService(
			repository.NewSQLitePlanRepo(database),
			uow,
			service.NewLogUseCaseObserver(logger),
		)
		app.Config = cfg
		app.Logger = logger
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
