package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/rational"
)

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eval EXPR",
		Short:   "Evaluate a prefix expression over integers with + - * /",
		Example: "  ratexp eval '- / 1 343 / 5 8'   # 1/343 - 5/8",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%r = %v\n", r, r)
			return nil
		},
	}
	return cmd
}

// evaluate computes an expression written in Polish (prefix) notation,
// such as "- / 1 343 / 5 8".
// Operands are integers, operators are +, -, * and /.
func evaluate(input string) (rational.Rational, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return rational.Rational{}, errors.Wrap(err, "parsing tokens")
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return rational.Rational{}, errors.Wrap(err, "processing tokens")
	}
	if len(stack) != 1 {
		return rational.Rational{}, errors.Errorf("post-processed stack contains %d items, expected exactly one", len(stack))
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, errors.New("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]rational.Rational, error) {
	stack := make([]rational.Rational, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "processing token %q", token)
		}
	}
	return stack, nil
}

func processOperator(stack []rational.Rational, token string) ([]rational.Rational, error) {
	if len(stack) < 2 {
		return nil, errors.New("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result rational.Rational
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, err
	}
	logger.Debugf("%r %s %r = %r", left, token, right, result)
	return append(stack, result), nil
}

func processOperand(stack []rational.Rational, token string) ([]rational.Rational, error) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, err
	}
	return append(stack, rational.NewFromInt64(n)), nil
}
