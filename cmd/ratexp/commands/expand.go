package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func expandCmd() *cobra.Command {
	var overline bool
	cmd := &cobra.Command{
		Use:     "expand NUM DEN",
		Short:   "Print the decimal expansion of NUM/DEN with its repeating cycle",
		Example: "  ratexp expand 1 6\n  ratexp expand -- -10 3\n  ratexp expand --overline 1 7",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRational(args[0], args[1])
			if err != nil {
				return err
			}
			prefix, cycle, err := r.Expansion().RepeatingLimit(config.Expand.MaxCycle)
			if err != nil {
				return errors.Wrapf(err, "expanding %s", r.RatString())
			}
			logger.Debugf("%s: %d non-repeating digit(s), cycle of %d", r.RatString(), len(prefix)-1, len(cycle))
			fmt.Fprintln(cmd.OutOrStdout(), render(r.IsNeg(), prefix, cycle, overline || config.Output.Overline))
			return nil
		},
	}
	cmd.Flags().BoolVar(&overline, "overline", false, "mark the cycle with overlines instead of parentheses")
	return cmd
}

// render prints an expansion in the same layout as rational.Rational.String.
func render(neg bool, prefix, cycle []uint64, overline bool) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(prefix[0], 10))
	if len(prefix) == 1 && len(cycle) == 0 {
		return b.String()
	}
	b.WriteByte('.')
	for _, d := range prefix[1:] {
		b.WriteByte(byte(d) + '0')
	}
	if len(cycle) == 0 {
		return b.String()
	}
	if !overline {
		b.WriteByte('(')
	}
	for _, d := range cycle {
		b.WriteByte(byte(d) + '0')
		if overline {
			b.WriteRune('\u0305')
		}
	}
	if !overline {
		b.WriteByte(')')
	}
	return b.String()
}
