package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/filebundler/internal/app"
	"github.com/vk/filebundler/internal/cli"
)

// main is the entrypoint for the bundler application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// Command failures are reported on stdout and still exit 0; only a
	// malformed invocation changes the exit code.
	if err := run(os.Stdin, os.Stdout, os.Stderr, "", os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stdout, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing. workDir
// overrides the process working directory when non-empty.
func run(in io.Reader, outW, logW io.Writer, workDir string, args []string) error {
	baseDir := workDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		baseDir = wd
	}

	args, err := cli.ExpandResponseFiles(args, baseDir)
	if err != nil {
		fmt.Fprintf(outW, "An error occurred: %v\n", err)
		return nil
	}

	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	settings := inv.Settings
	settings.WorkDir = baseDir
	bundler, err := app.NewApp(outW, logW, settings)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch inv.Command {
	case cli.CommandBundle:
		bundler.RunBundle(ctx, inv.Bundle)
	case cli.CommandCreateRsp:
		bundler.RunCreateResponseFile(ctx, in)
	}
	return nil
}
