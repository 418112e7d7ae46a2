package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/app"
	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/importer"
	"github.com/llehouerou/folio/internal/logging"
	"github.com/llehouerou/folio/internal/notify"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer logFile.Close()

	stateMgr, err := state.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	docs := store.New(stateMgr.DB())
	deps := app.Deps{Store: docs, State: stateMgr}

	if cfg.HasInbox() {
		w, err := importer.Watch(cfg.Inbox)
		if err != nil {
			// The viewer still works without the inbox.
			deps.InboxErr = err
		} else {
			defer w.Close()
			deps.Importer = importer.New(docs)
			deps.Inbox = w.Paths()
			if cfg.Notify.Imports {
				deps.Notifier = notify.New("Folio")
			}
		}
	}

	slog.Info("folio starting", "database", cfg.Database, "inbox", cfg.Inbox)

	m := app.New(cfg, deps)
	defer m.Zone.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
