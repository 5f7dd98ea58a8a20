package rsp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		expected      Options
		expectedField string
	}{
		{
			name:  "all answers given",
			input: "out.txt\ncs,py\ny\ntype\nY\nJane\n",
			expected: Options{
				Output:            "out.txt",
				Languages:         "cs,py",
				IncludeSourcePath: true,
				SortBy:            "type",
				EraseEmptyLines:   true,
				Author:            "Jane",
			},
		},
		{
			name:  "defaults for optional answers",
			input: "out.txt\nall\n\n\n\n\n",
			expected: Options{
				Output:    "out.txt",
				Languages: "all",
				SortBy:    "name",
			},
		},
		{
			name:  "non-y answers mean no",
			input: "out.txt\nall\nyes\nname\nn\n\n",
			expected: Options{
				Output:    "out.txt",
				Languages: "all",
				SortBy:    "name",
			},
		},
		{
			name:  "windows line endings",
			input: "out.txt\r\njs\r\ny\r\n\r\n\r\nBob\r\n",
			expected: Options{
				Output:            "out.txt",
				Languages:         "js",
				IncludeSourcePath: true,
				SortBy:            "name",
				Author:            "Bob",
			},
		},
		{
			name:  "input ends early",
			input: "out.txt\njava",
			expected: Options{
				Output:    "out.txt",
				Languages: "java",
				SortBy:    "name",
			},
		},
		{
			name:          "blank output is rejected",
			input:         "   \ncs\n",
			expectedField: "output",
		},
		{
			name:          "missing languages is rejected",
			input:         "out.txt\n",
			expectedField: "languages",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			opts, err := Prompt(strings.NewReader(tc.input), out)

			// --- Assert ---
			if tc.expectedField != "" {
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr), "expected a ValidationError, got %v", err)
				require.Equal(t, tc.expectedField, vErr.Field)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, opts); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrompt_PromptOrder(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, err := Prompt(strings.NewReader("o\nl\nn\nname\nn\na\n"), out)
	require.NoError(t, err)

	require.Equal(t, "Enter output file path: "+
		"Enter languages (e.g., cs, py, js): "+
		"Include source path as comment? (y/n): "+
		"Sort by (name/type): "+
		"Erase empty lines? (y/n): "+
		"Enter your name for the author (optional): ", out.String())
}

func TestPrompt_StopsAtFirstMissingRequiredAnswer(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, err := Prompt(strings.NewReader("\n"), out)

	require.EqualError(t, err, "Output file path is required.")
	require.Equal(t, "Enter output file path: ", out.String())
}

func TestOptions_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		opts     Options
		expected string
	}{
		{
			name:     "required only with default sort",
			opts:     Options{Output: "out.txt", Languages: "all", SortBy: "name"},
			expected: " --output out.txt --languages all --sort-by name",
		},
		{
			name: "every option",
			opts: Options{
				Output:            "b.txt",
				Languages:         "cs,py",
				IncludeSourcePath: true,
				SortBy:            "type",
				EraseEmptyLines:   true,
				Author:            "Jane",
			},
			expected: " --output b.txt --languages cs,py --include-source-path --sort-by type --erase-empty-lines --author Jane",
		},
		{
			name:     "values with spaces are not quoted",
			opts:     Options{Output: "my out.txt", Languages: "cs, py", SortBy: "name", Author: "Jane Doe"},
			expected: " --output my out.txt --languages cs, py --sort-by name --author Jane Doe",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, tc.opts.String())
		})
	}
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("stale content that is longer than the new one"), 0644))

	path, err := Write(dir, Options{Output: "o", Languages: "c", SortBy: "name"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, FileName), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, " --output o --languages c --sort-by name", string(got))
}
