package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/filebundler/internal/testutil"
)

func TestRunCreateResponseFile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		input        string
		expectedTail string
		expectedFile string
		expectNoFile bool
	}{
		{
			name:         "full answers",
			input:        "bundle.txt\ncs,py\ny\ntype\ny\nAda\n",
			expectedTail: "Response file created: response.rsp\n",
			expectedFile: " --output bundle.txt --languages cs,py --include-source-path --sort-by type --erase-empty-lines --author Ada",
		},
		{
			name:         "defaults",
			input:        "bundle.txt\nall\n\n\n\n\n",
			expectedTail: "Response file created: response.rsp\n",
			expectedFile: " --output bundle.txt --languages all --sort-by name",
		},
		{
			name:         "missing output",
			input:        "\n",
			expectedTail: "Error: Output file path is required.\n",
			expectNoFile: true,
		},
		{
			name:         "missing languages",
			input:        "bundle.txt\n\n",
			expectedTail: "Error: Languages are required.\n",
			expectNoFile: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dir := t.TempDir()
			a, out := newTestApp(t, dir)

			// --- Act ---
			a.RunCreateResponseFile(context.Background(), strings.NewReader(tc.input))

			// --- Assert ---
			require.True(t, strings.HasSuffix(out.String(), tc.expectedTail), "unexpected output: %q", out.String())
			if tc.expectNoFile {
				testutil.RequireNoFile(t, dir, "response.rsp")
				return
			}
			require.Equal(t, tc.expectedFile, testutil.ReadFile(t, dir, "response.rsp"))
		})
	}
}

func TestRunCreateResponseFile_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a, out := newTestApp(t, dir)
	a.workDir = filepath.Join(dir, "does-not-exist")

	a.RunCreateResponseFile(context.Background(), strings.NewReader("o\nl\n\n\n\n\n"))
	require.Contains(t, out.String(), "Unexpected error: ")
}
