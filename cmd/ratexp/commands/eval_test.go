package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/rational"
)

func TestEvaluate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			want  rational.Rational
		}{
			{"- / 1 343 / 5 8", rational.MustNew(-1707, 2744)},
			{"+ 1 2", rational.MustNew(3, 1)},
			{"* / 1 3 3", rational.MustNew(1, 1)},
			{"+ / 1 3 / 1 6", rational.MustNew(1, 2)},
			{"- 1 1", rational.Rational{}},
			{"/ -4 6", rational.MustNew(-2, 3)},
			{"7", rational.MustNew(7, 1)},
		}
		for _, tt := range tests {
			got, err := evaluate(tt.input)
			require.NoError(t, err, "evaluate(%q)", tt.input)
			assert.Equal(t, tt.want, got, "evaluate(%q)", tt.input)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			input string
			want  error
		}{
			"no tokens":        {"   ", nil},
			"missing operand":  {"+ 1", nil},
			"extra operand":    {"1 2", nil},
			"bad operand":      {"+ 1 x", nil},
			"division by zero": {"/ 1 0", rational.ErrDivisionByZero},
			"overflow":         {"* 9223372036854775807 * 9223372036854775807 9223372036854775807", rational.ErrOverflow},
		}
		for name, tt := range tests {
			_, err := evaluate(tt.input)
			require.Error(t, err, name)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want, name)
			}
		}
	})
}
