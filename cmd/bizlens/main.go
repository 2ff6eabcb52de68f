package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/cli"
	"github.com/bizlens/bizlens/internal/config"
	"github.com/bizlens/bizlens/internal/db"
	"github.com/bizlens/bizlens/internal/llm"
	"github.com/bizlens/bizlens/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{}

	// Persistence is optional: without a database the assistant still
	// answers, it just keeps no transcripts or stored settings.
	database, dbErr := db.OpenDB(cfg.DBPath)
	if dbErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: running without persistence: %v\n", dbErr)
	} else {
		defer database.Close()

		settingsRepo := repository.NewSQLiteSettingsRepo(database)
		if stored, err := settingsRepo.All(context.Background()); err == nil {
			cfg.ApplyStored(stored)
			cfg.ApplyEnv() // env vars win over stored settings
		}

		app.Sessions = repository.NewSQLiteSessionRepo(database)
		app.Messages = repository.NewSQLiteMessageRepo(database)
		app.Settings = settingsRepo
	}

	cat := catalog.Default()
	cat.Currency = cfg.Currency

	var client llm.Client
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.LogObserver{W: os.Stderr}
		}
		client, err = llm.NewClient(cfg.LLM, observer)
		if err != nil {
			return err
		}
	}
	narrator := assistant.NewNarrator(client, cfg.LLM.Enabled, assistant.BuildNarrationSystemPrompt(cat))

	var uow db.UnitOfWork
	if database != nil {
		uow = db.NewSQLiteUnitOfWork(database)
	}

	var turnObserver assistant.TurnObserver
	if os.Getenv("BIZLENS_LOG") != "" {
		turnObserver = assistant.NewLogTurnObserver(os.Stderr)
	}

	app.Assistant = assistant.NewService(cat, narrator, uow, turnObserver)
	app.Config = cfg
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
