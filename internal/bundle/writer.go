package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourcePathPrefix starts the annotation line written before each file when
// source paths are included.
const SourcePathPrefix = "// Source of file: "

// Options controls the artifact layout.
type Options struct {
	IncludeSourcePath bool
	EraseEmptyLines   bool
	// Author is written as " <Author>" on the first line when AuthorSet is true.
	Author    string
	AuthorSet bool
}

// WriteFile creates (or truncates) path and writes the artifact for files
// into it, in the given order. The file is flushed and closed on every
// return path; a truncated file may remain if an error occurs mid-write.
func WriteFile(path string, files []string, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, files, opts); err != nil {
		// Flush what was produced before the failure.
		return errors.Join(err, bw.Flush())
	}
	return bw.Flush()
}

// Write streams the artifact for files to w.
func Write(w io.Writer, files []string, opts Options) error {
	if opts.AuthorSet {
		if _, err := fmt.Fprintf(w, " %s\n", opts.Author); err != nil {
			return err
		}
	}

	for _, file := range files {
		if opts.IncludeSourcePath {
			if _, err := fmt.Fprintf(w, "%s%s\n", SourcePathPrefix, file); err != nil {
				return err
			}
		}

		var err error
		if opts.EraseEmptyLines {
			err = copyNonBlankLines(w, file)
		} else {
			err = copyFile(w, file)
		}
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// copyNonBlankLines writes each line of path that contains a non-whitespace
// character, terminated by "\n". Lines keep their own leading and trailing
// whitespace; only the "\n" or "\r\n" terminator is replaced.
func copyNonBlankLines(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}
