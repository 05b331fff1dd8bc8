package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "ratexp.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 20, c.Output.Digits)
	assert.False(t, c.Output.Overline)
	assert.Equal(t, int32(16), c.Output.FloatPrecision)
	assert.Equal(t, 100_000, c.Expand.MaxCycle)
	assert.NoError(t, c.validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		file := writeConfig(t, `
[output]
digits = 5
overline = true

[expand]
max-cycle = 42
`)
		c, err := LoadConfig(file)
		require.NoError(t, err)
		assert.Equal(t, 5, c.Output.Digits)
		assert.True(t, c.Output.Overline)
		assert.Equal(t, int32(defaultFloatPrecision), c.Output.FloatPrecision)
		assert.Equal(t, 42, c.Expand.MaxCycle)
	})

	t.Run("empty", func(t *testing.T) {
		c, err := LoadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), c)
	})

	t.Run("error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)

		_, err = LoadConfig(writeConfig(t, "[output\ndigits = 5"))
		assert.Error(t, err)

		_, err = LoadConfig(writeConfig(t, "[output]\ndigits = -1\n"))
		assert.ErrorContains(t, err, "output.digits must not be negative")

		_, err = LoadConfig(writeConfig(t, "[output]\nfloat-precision = -3\n"))
		assert.ErrorContains(t, err, "output.float-precision must not be negative")

		_, err = LoadConfig(writeConfig(t, "[expand]\nmax-cycle = -10\n"))
		assert.ErrorContains(t, err, "expand.max-cycle must not be negative")
	})

	t.Run("all errors", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `
[output]
digits = -1
float-precision = -1

[expand]
max-cycle = -1
`))
		require.Error(t, err)
		merr, ok := pkgerrors.Cause(err).(*multierror.Error)
		require.True(t, ok, "%T", pkgerrors.Cause(err))
		assert.Len(t, merr.Errors, 3)
	})
}
