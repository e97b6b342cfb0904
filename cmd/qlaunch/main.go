package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"

	"github.com/swfz/qlaunch/internal/app"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown (Ctrl+C)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})

	// Optional env file, never overriding the real environment
	if path, err := app.EnvFilePath(); err == nil {
		if err := app.LoadEnvFile(path); err != nil {
			logger.Warnf("Ignoring env file %s: %v", path, err)
		}
	}

	config, err := app.ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	if config.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	return app.New(config).Run(ctx)
}
