package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal"
	"github.com/saeidalz13/battleship-solo/internal/app"
	"github.com/saeidalz13/battleship-solo/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
		Level:           cfg.LogLevel,
	})
	log.SetDefault(logger)

	opts := []app.Option{
		app.WithConfig(cfg),
		app.WithLogger(logger),
	}

	if cfg.DatabaseUrl != "" {
		psqlDb := db.MustConnectToDb(cfg.DatabaseUrl, db.DefaultMigrationDir)
		defer psqlDb.Close()

		serverIpNet, err := internal.GetServerIpNet()
		if err != nil {
			logger.Fatal("failed to resolve server ip", "err", err)
		}

		dbManager := sqlc.NewDbManager(sqlc.New(psqlDb), internal.ToPqtypeInet(serverIpNet))
		opts = append(opts, app.WithRecorder(dbManager.Results))
	}

	runner := app.NewRunner(opts...)
	status, err := runner.Run(context.Background())
	if err != nil {
		logger.Fatal("match ended early", "status", status, "err", err)
	}
	logger.Debug("match finished", "status", status)
}
