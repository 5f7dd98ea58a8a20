package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/filebundler/internal/bundle"
)

func TestNewConfig_RequiresOutputAndLanguages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "both missing", cfg: Config{}},
		{name: "output missing", cfg: Config{Languages: "py"}},
		{name: "languages blank", cfg: Config{Output: "out.txt", Languages: " \t"}},
		{name: "output blank", cfg: Config{Output: "  ", Languages: "py"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConfig(tc.cfg)

			var usageErr *UsageError
			require.True(t, errors.As(err, &usageErr))
			require.Equal(t, MsgMissingRequired, usageErr.Message)
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Output: "out.txt", Languages: "PY, xyz ,cs", SortBy: "Type"})
	require.NoError(t, err)

	req, err := cfg.Resolve()
	require.NoError(t, err)
	require.Equal(t, []string{"py", "cs"}, req.Selected)
	require.Equal(t, bundle.SortByType, req.SortKey)
	require.Equal(t, "out.txt", req.Output)
}

func TestConfig_Resolve_NoValidLanguages(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Output: "out.txt", Languages: "xyz,go"})
	require.NoError(t, err)

	_, err = cfg.Resolve()
	require.EqualError(t, err, MsgNoValidLanguage)
}
