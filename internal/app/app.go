package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/filebundler/internal/ctxlog"
)

// App runs the bundler commands. User-facing results go to outW; diagnostic
// logs go to the logger.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	workDir string
}

// NewApp is the constructor for the application. Logs are written to logW
// using an isolated logger built from settings. An empty settings.WorkDir is
// resolved to the process working directory.
func NewApp(outW, logW io.Writer, settings Settings) (*App, error) {
	logger := newLogger(settings.LogLevel, settings.LogFormat, logW)

	workDir := settings.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	logger.Debug("App configured.", "work_dir", workDir, "log_level", settings.LogLevel)

	return &App{
		outW:    outW,
		logger:  logger,
		workDir: workDir,
	}, nil
}

// WorkDir returns the absolute directory the app operates in.
func (a *App) WorkDir() string {
	return a.workDir
}

// withLogger attaches the app logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// resolve makes p absolute relative to the app's working directory.
func (a *App) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(a.workDir, p)
}
