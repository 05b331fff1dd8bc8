package commands

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/govalues/rational"
)

func floatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "float NUM DEN",
		Short: "Print approximations of NUM/DEN as float64 and as a rounded decimal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRational(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "float64: %s\n", strconv.FormatFloat(r.Float64(), 'g', -1, 64))
			fmt.Fprintf(out, "decimal: %s\n", toDecimal(r, config.Output.FloatPrecision).String())
			return nil
		},
	}
	return cmd
}

// toDecimal rounds r half away from zero to prec digits after the decimal point.
func toDecimal(r rational.Rational, prec int32) decimal.Decimal {
	num := decimal.NewFromBigInt(new(big.Int).SetUint64(r.Num()), 0)
	den := decimal.NewFromBigInt(new(big.Int).SetUint64(r.Den()), 0)
	d := num.DivRound(den, prec)
	if r.IsNeg() {
		d = d.Neg()
	}
	return d
}
