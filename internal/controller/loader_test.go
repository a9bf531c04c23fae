package controller

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawnumber/internal/game"
)

func TestParseConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		consistent   bool
		min, max     int
		attempts     int
		wantWarnings []string
	}{
		{
			name:       "colon separated",
			input:      "minimum: 1\nmaximum: 10\nattempts: 3\n",
			consistent: true,
			min:        1,
			max:        10,
			attempts:   3,
		},
		{
			name:       "whitespace separated",
			input:      "minimum 5\nmaximum\t50\n  attempts   7  \n",
			consistent: true,
			min:        5,
			max:        50,
			attempts:   7,
		},
		{
			name:       "colon before value",
			input:      "minimum :2\nmaximum :20\nattempts :4\n",
			consistent: true,
			min:        2,
			max:        20,
			attempts:   4,
		},
		{
			name:       "unknown keys and comments ignored",
			input:      "# game\ncolour: red\nminimum: 1\nmaximum: 10\nattempts: 3\nlevel: hard\n",
			consistent: true,
			min:        1,
			max:        10,
			attempts:   3,
		},
		{
			name:       "lines without exactly two tokens skipped",
			input:      "minimum:1\nminimum: 1 2\nminimum: 3\nmaximum: 10\nattempts: 3\n",
			consistent: true,
			min:        3,
			max:        10,
			attempts:   3,
		},
		{
			name:         "malformed integer warns and leaves field unset",
			input:        "minimum: one\nmaximum: 10\nattempts: 3\n",
			max:          10,
			attempts:     3,
			wantWarnings: []string{MsgInvalidValue},
		},
		{
			name:         "duplicate key keeps first value",
			input:        "minimum: 1\nminimum: 5\nmaximum: 10\nattempts: 3\n",
			consistent:   true,
			min:          1,
			max:          10,
			attempts:     3,
			wantWarnings: []string{`Duplicate "minimum" in config file, first value is kept`},
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:     "inverted range",
			input:    configText(10, 1, 3),
			min:      10,
			max:      1,
			attempts: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, warnings, err := ParseConfiguration(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.consistent, cfg.IsConsistent())
			assert.Equal(t, tt.min, cfg.Min())
			assert.Equal(t, tt.max, cfg.Max())
			assert.Equal(t, tt.attempts, cfg.Attempts())
			assert.Equal(t, tt.wantWarnings, warnings)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseConfigurationReadError(t *testing.T) {
	t.Parallel()

	_, _, err := ParseConfiguration(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParseConfigurationFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(configText(1, 6, 2)), 0o644))

	cfg, warnings, err := ParseConfigurationFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, cfg.IsConsistent())
	assert.Equal(t, 6, cfg.Max())

	_, _, err = ParseConfigurationFile(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteConfiguration(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, WriteConfiguration(&sb, game.NewConfiguration(-5, 5, 4)))
	assert.Equal(t, "minimum: -5\nmaximum: 5\nattempts: 4\n", sb.String())

	cfg, warnings, err := ParseConfiguration(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, game.NewConfiguration(-5, 5, 4), cfg)
}
