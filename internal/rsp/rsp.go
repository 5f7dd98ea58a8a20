// Package rsp collects bundle options interactively and serializes them into
// a response file that can be handed back to the bundle command.
package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the response file written into the working directory.
const FileName = "response.rsp"

// ValidationError reports a required answer that was left empty.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// Options is the set of answers gathered by Prompt.
type Options struct {
	Output            string
	Languages         string
	IncludeSourcePath bool
	SortBy            string
	EraseEmptyLines   bool
	Author            string
}

// String renders the options as a single command-line fragment. Values are
// written as typed, without quoting.
func (o Options) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, " --output %s --languages %s", o.Output, o.Languages)
	if o.IncludeSourcePath {
		b.WriteString(" --include-source-path")
	}
	if o.SortBy != "" {
		fmt.Fprintf(&b, " --sort-by %s", o.SortBy)
	}
	if o.EraseEmptyLines {
		b.WriteString(" --erase-empty-lines")
	}
	if o.Author != "" {
		fmt.Fprintf(&b, " --author %s", o.Author)
	}
	return b.String()
}

// Prompt asks for each option in order, writing prompts to out and reading
// one answer line per prompt from in. End of input counts as an empty answer.
// It stops at the first required answer left blank with a *ValidationError.
func Prompt(in io.Reader, out io.Writer) (Options, error) {
	p := &prompter{r: bufio.NewReader(in), w: out}

	var opts Options
	var err error

	if opts.Output, err = p.required("Enter output file path: ", "output", "Output file path is required."); err != nil {
		return Options{}, err
	}
	if opts.Languages, err = p.required("Enter languages (e.g., cs, py, js): ", "languages", "Languages are required."); err != nil {
		return Options{}, err
	}
	if opts.IncludeSourcePath, err = p.yesNo("Include source path as comment? (y/n): "); err != nil {
		return Options{}, err
	}
	if opts.SortBy, err = p.ask("Sort by (name/type): "); err != nil {
		return Options{}, err
	}
	if strings.TrimSpace(opts.SortBy) == "" {
		opts.SortBy = "name"
	}
	if opts.EraseEmptyLines, err = p.yesNo("Erase empty lines? (y/n): "); err != nil {
		return Options{}, err
	}
	if opts.Author, err = p.ask("Enter your name for the author (optional): "); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Write stores the serialized options as the entire content of
// dir/response.rsp, replacing any previous file, and returns its path.
func Write(dir string, opts Options) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(opts.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

type prompter struct {
	r *bufio.Reader
	w io.Writer
}

// ask prints label and returns the next input line without its terminator.
func (p *prompter) ask(label string) (string, error) {
	if _, err := io.WriteString(p.w, label); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (p *prompter) required(label, field, msg string) (string, error) {
	v, err := p.ask(label)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return "", &ValidationError{Field: field, Message: msg}
	}
	return v, nil
}

func (p *prompter) yesNo(label string) (bool, error) {
	v, err := p.ask(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(v), "y"), nil
}
