// Package main is the entry point for the toilet-monitor CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/toilet-monitor/internal/app"
	"github.com/runoshun/toilet-monitor/internal/cli"
	"github.com/runoshun/toilet-monitor/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Create dependency injection container
	container, err := app.New(ctx, domain.DefaultHomeDir(), os.Stdout, os.Stderr)
	if err != nil {
		return runWithoutContainer(ctx, err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

// runWithoutContainer lets help, version and config template work even when
// the config file or store cannot be opened.
func runWithoutContainer(ctx context.Context, initErr error) error {
	if !canRunWithoutContainer(os.Args[1:]) {
		return fmt.Errorf("failed to initialize: %w", initErr)
	}
	rootCmd := cli.NewRootCommand(nil, version)
	return rootCmd.ExecuteContext(ctx)
}

func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	if len(args) > 1 && args[0] == "config" && args[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
