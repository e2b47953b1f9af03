package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/abezemskiy/novalogin/internal/client/logger"
	"github.com/abezemskiy/novalogin/internal/client/tui"
	"github.com/abezemskiy/novalogin/internal/client/tui/app"
	"github.com/abezemskiy/novalogin/internal/client/tui/login"

	"github.com/rivo/tview"
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	if logFile != "" {
		if err := logger.Initialize(logLevel, logFile); err != nil {
			log.Fatalf("failed to initialize logger, %v", err)
		}
		defer logger.ClientLog.Sync()
	}

	tuiApp, outcome := createTUI()
	if err := tuiApp.Run(); err != nil {
		log.Fatalf("tui stopped with error, %v", err)
	}

	ok, err := report(os.Stdout, outcome)
	if err != nil {
		log.Fatalf("failed to write credentials, %v", err)
	}
	if !ok {
		logger.ClientLog.Sync()
		os.Exit(1)
	}
}

// createTUI - создаю TUI с формой входа и получателя итога диалога.
func createTUI() (*app.App, *app.Outcome) {
	var outcome *app.Outcome
	prims := []app.Primitives{
		{
			Name: tui.Login,
			Prim: func(a *app.App) tview.Primitive {
				outcome = app.NewOutcome(a)
				return login.Page(outcome)(a)
			},
		},
	}
	tuiApp := app.NewApp(prims)
	return tuiApp, outcome
}

// report - передаю принятые данные вызывающей стороне в формате JSON.
// Возвращает false, если диалог закрыт без данных.
func report(w io.Writer, outcome *app.Outcome) (bool, error) {
	creds, ok := outcome.Result()
	if !ok {
		return false, nil
	}
	return true, json.NewEncoder(w).Encode(creds)
}
