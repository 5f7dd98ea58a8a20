package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/filebundler/internal/bundle"
	"github.com/vk/filebundler/internal/ctxlog"
	"github.com/vk/filebundler/internal/fsutil"
)

// BundleResult describes a completed bundling run.
type BundleResult struct {
	OutputPath string
	Files      []string
	// Languages lists the selected languages that contributed at least one
	// file, in selection order.
	Languages []string
}

// Summary is the completion line printed after a successful run.
func (r *BundleResult) Summary() string {
	return fmt.Sprintf("Bundled %d files (%s) into %s", len(r.Files), strings.Join(r.Languages, ", "), r.OutputPath)
}

// Bundle validates cfg, discovers and orders the matching files in the
// working directory, and writes the output artifact. Validation and
// discovery failures return a *UsageError before the output is touched.
func (a *App) Bundle(ctx context.Context, cfg Config) (*BundleResult, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Bundle started.", "output", cfg.Output, "languages", cfg.Languages)

	valid, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	req, err := valid.Resolve()
	if err != nil {
		return nil, err
	}
	logger.Debug("Languages resolved.", "selected", req.Selected, "sort_by", req.SortKey)

	files, err := fsutil.FindTopLevel(a.workDir, req.Selected)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &UsageError{Message: MsgNoFilesFound + strings.Join(req.Selected, ", ")}
	}
	bundle.Sort(files, req.SortKey)
	logger.Debug("Files discovered.", "count", len(files))

	outPath := a.resolve(req.Output)
	opts := bundle.Options{
		IncludeSourcePath: req.IncludeSourcePath,
		EraseEmptyLines:   req.EraseEmptyLines,
		Author:            req.Author,
		AuthorSet:         req.AuthorSet,
	}
	if err := bundle.WriteFile(outPath, files, opts); err != nil {
		return nil, fmt.Errorf("failed to write bundle %s: %w", outPath, err)
	}
	logger.Info("Bundle written.", "path", outPath, "files", len(files))

	return &BundleResult{
		OutputPath: outPath,
		Files:      files,
		Languages:  contributing(req.Selected, files),
	}, nil
}

// RunBundle executes Bundle and reports the outcome on the app output. It
// never returns an error: every failure ends the run with a message.
func (a *App) RunBundle(ctx context.Context, cfg Config) {
	res, err := a.Bundle(ctx, cfg)
	if err == nil {
		fmt.Fprintln(a.outW, res.Summary())
		return
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		a.logger.Debug("Bundle aborted.", "reason", usageErr.Message)
		fmt.Fprintln(a.outW, usageErr.Message)
		return
	}
	a.logger.Error("Bundle failed.", "error", err)
	fmt.Fprintf(a.outW, "An error occurred: %v\n", err)
}

func contributing(selected, files []string) []string {
	var langs []string
	for _, lang := range selected {
		for _, f := range files {
			if filepath.Ext(f) == "."+lang {
				langs = append(langs, lang)
				break
			}
		}
	}
	return langs
}
