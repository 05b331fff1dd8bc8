package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func digitsCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "digits NUM DEN",
		Short:   "Print the first digits of NUM/DEN without rounding",
		Example: "  ratexp digits 10 3\n  ratexp digits -n 5 1 7",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRational(args[0], args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = config.Output.Digits
			}
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			digits := r.Digits()
			var b strings.Builder
			if r.IsNeg() {
				b.WriteByte('-')
			}
			b.WriteString(strconv.FormatUint(digits.Next(), 10))
			if count > 0 {
				b.WriteByte('.')
				for _, d := range digits.Take(count) {
					b.WriteByte(byte(d) + '0')
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultDigits, "number of fractional digits")
	return cmd
}
