package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"durotar/internal/config"
	"durotar/internal/desktop"
	"durotar/internal/engine"
	"durotar/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: built-in settings)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	g, err := engine.Setup(cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	if err := desktop.Run(desktop.New(g, logger), "Durotar"); err != nil {
		logger.Fatal("window closed with error", zap.Error(err))
	}
}
