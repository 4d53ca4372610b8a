package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"rondo/internal/config"
	"rondo/internal/database"
	"rondo/internal/notify"
	"rondo/internal/timer"
	"rondo/internal/tui"
	"rondo/internal/util"
)

func main() {
	ctx := context.Background()

	// 1. Initialize Database
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)
	redirectLogs(dataRoot)

	store, err := database.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// 2. Build the Engine
	// The bell and the title bar only make sense on a real terminal.
	cfg := timer.Config{Guard: notify.NopGuard{}}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Pulse = notify.NewBellPulse(os.Stdout)
		cfg.Presenter = notify.NewTitleNotifier(os.Stdout)
	}
	engine := timer.New(cfg)
	defer engine.Stop()

	// 3. Start Program
	model := tui.NewMainModel(ctx, store, engine)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// redirectLogs sends the standard logger to a file so in-app logging never
// scribbles over the alternate screen.
func redirectLogs(dir string) {
	f, err := os.OpenFile(filepath.Join(dir, config.AppName+".log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
