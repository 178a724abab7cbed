package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"flycam/internal/config"
	"flycam/internal/game"
	"flycam/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	scenePath := flag.String("scene", "", "scene file to load, overrides the config")
	flag.Parse()

	// Paths given on the command line are relative to the caller's directory.
	*configPath = absPath(*configPath)
	if *scenePath != "" {
		*scenePath = absPath(*scenePath)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	cfg, found, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flycam: load config: %v\n", err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	log, err := logger.NewZapLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flycam: init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	watchPath := *configPath
	if found {
		log.Info("config loaded", logger.F("path", *configPath))
	} else {
		log.Info("config file not found, using defaults", logger.F("path", *configPath))
		watchPath = ""
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.New(cfg, watchPath, log).Run(ctx); err != nil {
		log.Error("game exited with error", logger.F("error", err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
