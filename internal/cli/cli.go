package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/filebundler/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command names a subcommand.
type Command string

const (
	CommandBundle    Command = "bundle"
	CommandCreateRsp Command = "create-rsp"
)

// Invocation is a parsed command line.
type Invocation struct {
	Command  Command
	Bundle   app.Config
	Settings app.Settings
}

const usage = `
bundler - Bundle source files of selected languages into a single file.

Usage:
  bundler bundle --output <path> --languages <csv|all> [options]
  bundler create-rsp
  bundler bundle @response.rsp

Commands:
  bundle       Bundle code files to a single file
  create-rsp   Create a response file with the full command

Use "bundler <command> -h" for the options of a command.
`

// Parse processes command-line arguments. It returns the Invocation to run,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.", "args", len(args))

	if len(args) == 0 || isHelp(args[0]) {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	switch Command(args[0]) {
	case CommandBundle:
		return parseBundle(args[1:], output)
	case CommandCreateRsp:
		return parseCreateRsp(args[1:], output)
	default:
		fmt.Fprint(output, usage)
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", args[0])}
	}
}

func parseBundle(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet(string(CommandBundle), flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Bundle code files to a single file.

Usage:
  bundler bundle --output <path> --languages <csv|all> [options]

Options (long and shorthand forms are equivalent):
`)
		flagSet.PrintDefaults()
	}

	var cfg app.Config
	flagSet.StringVar(&cfg.Output, "output", "", "File path and name for the bundled file.")
	flagSet.StringVar(&cfg.Output, "o", "", "File path and name for the bundled file (shorthand).")
	flagSet.StringVar(&cfg.Languages, "languages", "", "File languages to bundle (e.g., cs,py,js or all).")
	flagSet.StringVar(&cfg.Languages, "l", "", "File languages to bundle (shorthand).")
	flagSet.BoolVar(&cfg.IncludeSourcePath, "include-source-path", false, "Include the source file path as a comment in the bundled file.")
	flagSet.BoolVar(&cfg.IncludeSourcePath, "i", false, "Include the source file path as a comment (shorthand).")
	flagSet.StringVar(&cfg.SortBy, "sort-by", "name", "Sort files by 'name' or 'type'.")
	flagSet.StringVar(&cfg.SortBy, "s", "name", "Sort files by 'name' or 'type' (shorthand).")
	flagSet.BoolVar(&cfg.EraseEmptyLines, "erase-empty-lines", false, "Erase the empty lines from the files.")
	flagSet.BoolVar(&cfg.EraseEmptyLines, "e", false, "Erase the empty lines from the files (shorthand).")
	flagSet.StringVar(&cfg.Author, "author", "", "Author name written at the top of the bundled file.")
	flagSet.StringVar(&cfg.Author, "a", "", "Author name written at the top of the bundled file (shorthand).")
	logLevel, logFormat := logFlags(flagSet)

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unrecognized argument %q", flagSet.Arg(0))}
	}

	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "author" || f.Name == "a" {
			cfg.AuthorSet = true
		}
	})

	settings, err := newSettings(*logLevel, *logFormat)
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "command", CommandBundle)
	return &Invocation{Command: CommandBundle, Bundle: cfg, Settings: settings}, false, nil
}

func parseCreateRsp(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet(string(CommandCreateRsp), flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Create a response file with the full command. Every value is asked for
interactively and the result is written to response.rsp.

Usage:
  bundler create-rsp

Options:
`)
		flagSet.PrintDefaults()
	}
	logLevel, logFormat := logFlags(flagSet)

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unrecognized argument %q", flagSet.Arg(0))}
	}

	settings, err := newSettings(*logLevel, *logFormat)
	if err != nil {
		return nil, false, err
	}
	return &Invocation{Command: CommandCreateRsp, Settings: settings}, false, nil
}

func logFlags(flagSet *flag.FlagSet) (level, format *string) {
	level = flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	format = flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	return level, format
}

func newSettings(levelFlag, formatFlag string) (app.Settings, error) {
	logFormat := strings.ToLower(formatFlag)
	if logFormat != "text" && logFormat != "json" {
		return app.Settings{}, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(levelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return app.Settings{}, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return app.Settings{LogLevel: logLevel, LogFormat: logFormat}, nil
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}
