package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/filebundler/internal/ctxlog"
	"github.com/vk/filebundler/internal/rsp"
)

// CreateResponseFile prompts for bundle options on in/outW and writes them to
// response.rsp in the working directory. It returns the file name as shown to
// the user.
func (a *App) CreateResponseFile(ctx context.Context, in io.Reader) (string, error) {
	logger := ctxlog.FromContext(a.withLogger(ctx))

	opts, err := rsp.Prompt(in, a.outW)
	if err != nil {
		return "", err
	}
	logger.Debug("Response options collected.", "command", opts.String())

	path, err := rsp.Write(a.workDir, opts)
	if err != nil {
		return "", err
	}
	logger.Info("Response file written.", "path", path)
	return rsp.FileName, nil
}

// RunCreateResponseFile executes CreateResponseFile and reports the outcome
// on the app output. Missing answers and unexpected failures are reported
// differently; neither is returned.
func (a *App) RunCreateResponseFile(ctx context.Context, in io.Reader) {
	name, err := a.CreateResponseFile(ctx, in)
	if err == nil {
		fmt.Fprintf(a.outW, "Response file created: %s\n", name)
		return
	}

	var vErr *rsp.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintf(a.outW, "Error: %s\n", vErr.Message)
		return
	}
	a.logger.Error("Response file creation failed.", "error", err)
	fmt.Fprintf(a.outW, "Unexpected error: %v\n", err)
}
