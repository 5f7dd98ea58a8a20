package app

import (
	"errors"
	"strings"

	"github.com/vk/filebundler/internal/bundle"
	"github.com/vk/filebundler/internal/language"
)

// UsageError is a validation failure detected before any file is written.
// Its message is shown to the user as-is.
type UsageError struct {
	Message string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Message
}

// Messages for the early-abort failures. They are part of the CLI output.
const (
	MsgMissingRequired = "Output file path and languages must be specified."
	MsgNoValidLanguage = "No valid languages selected."
	MsgNoFilesFound    = "No files found for the specified languages: "
)

// Config holds the raw settings of one bundling run as given on the command line.
type Config struct {
	Output            string
	Languages         string
	IncludeSourcePath bool
	SortBy            string
	EraseEmptyLines   bool
	Author            string
	AuthorSet         bool
}

// Settings holds the process-level options shared by every command.
type Settings struct {
	// WorkDir is the directory scanned for sources, the base for relative
	// paths, and where response.rsp is written. Empty means the process
	// working directory.
	WorkDir string

	LogFormat string
	LogLevel  string
}

// Request is a validated Config with its languages and sort key resolved.
type Request struct {
	Config
	Selected []string
	SortKey  bundle.SortKey
}

// NewConfig validates cfg and returns the run configuration.
func NewConfig(cfg Config) (*Config, error) {
	if strings.TrimSpace(cfg.Output) == "" || strings.TrimSpace(cfg.Languages) == "" {
		return nil, &UsageError{Message: MsgMissingRequired}
	}
	return &cfg, nil
}

// Resolve turns the configuration into a Request, failing when no requested
// language is supported.
func (c *Config) Resolve() (*Request, error) {
	if c == nil {
		return nil, errors.New("app: nil config")
	}
	selected := language.Resolve(c.Languages)
	if len(selected) == 0 {
		return nil, &UsageError{Message: MsgNoValidLanguage}
	}
	return &Request{
		Config:   *c,
		Selected: selected,
		SortKey:  bundle.ParseSortKey(c.SortBy),
	}, nil
}
