// Package main is the entry point for the taskpad TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/app"
	"taskpad/internal/backend/taskapi"
	"taskpad/internal/config"
	"taskpad/internal/exitcode"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configDir   = flag.String("config", "", "config directory (default: XDG config dir)")
		baseURL     = flag.String("base-url", "", "backend base URL (overrides config)")
		debug       = flag.Bool("debug", false, "log to debug.log in the config dir")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("taskpad %s\n", version)
		return exitcode.Success
	}
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument: %s\n", flag.Arg(0))
		return exitcode.UserError
	}

	// Cancel on interrupt so in-flight requests stop with the UI.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *debug {
		cfg.Debug = true
	}

	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogPath(), "taskpad")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitcode.ConfigError
		}
		defer f.Close()
	}

	client := taskapi.New(cfg)
	program := tea.NewProgram(app.New(ctx, cfg, client), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.RuntimeError
	}
	return exitcode.Success
}
