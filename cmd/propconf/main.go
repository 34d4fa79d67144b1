package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/propconf/internal/app"
	"github.com/vk/propconf/internal/cli"
	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/hclcfg"
	"github.com/vk/propconf/internal/yamlcfg"
)

// main is the entrypoint for the propconf application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	var loader config.Loader
	switch appConfig.Format {
	case "yaml":
		loader = yamlcfg.NewLoader()
	default:
		loader = hclcfg.NewLoader()
	}

	propconfApp := app.NewApp(outW, appConfig, loader)
	return propconfApp.Run(context.Background())
}
