package rational

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

const (
	// MaxStringCycle is the maximum number of digits produced by
	// [Rational.String] and [Rational.Format] while looking for the
	// repeating cycle.
	// Longer expansions are truncated and end with "...".
	MaxStringCycle = 10_000

	// defaultFracDigits is the number of fractional digits printed
	// by the %f verb when no precision is given.
	defaultFracDigits = 20

	// overline is the combining overline that marks repeating digits
	// in the %o verb.
	overline = "\u0305"
)

// String method implements the [fmt.Stringer] interface and returns
// the decimal expansion of r with the repeating cycle in parentheses:
//
//	1/4  => 0.25
//	1/3  => 0.(3)
//	-1/6 => -0.1(6)
//	10/3 => 3.(3)
//	2    => 2
//
// The formal EBNF grammar of the result is as follows:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	cycle          ::= '(' digits ')'
//	significand    ::= digits '.' digits [cycle] | digits '.' cycle | digits
//	numeric-string ::= [sign] significand
//
// If no cycle is found within [MaxStringCycle] digits, the digits produced
// so far are printed followed by "...".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	buf := make([]byte, 0, 24)
	if r.IsNeg() {
		buf = append(buf, '-')
	}
	return string(r.appendRepeating(buf, false))
}

// appendRepeating appends the decimal expansion of |r| to buf.
// The cycle is put into parentheses, or overlined if overlined is true.
func (r Rational) appendRepeating(buf []byte, overlined bool) []byte {
	prefix, cycle, err := r.Expansion().RepeatingLimit(MaxStringCycle)
	truncated := errors.Is(err, ErrCycleTooLong)

	// Whole part
	buf = strconv.AppendUint(buf, prefix[0], 10)
	if len(prefix) == 1 && len(cycle) == 0 && !truncated {
		return buf
	}

	// Decimal point
	buf = append(buf, '.')

	// Non-repeating digits
	for _, d := range prefix[1:] {
		buf = append(buf, byte(d)+'0')
	}
	if truncated {
		return append(buf, "..."...)
	}

	// Cycle
	if len(cycle) > 0 {
		if !overlined {
			buf = append(buf, '(')
		}
		for _, d := range cycle {
			buf = append(buf, byte(d)+'0')
			if overlined {
				buf = append(buf, overline...)
			}
		}
		if !overlined {
			buf = append(buf, ')')
		}
	}
	return buf
}

// appendTrunc appends the whole part of |r| followed by prec fractional
// digits to buf.
// The digits are truncated, not rounded.
func (r Rational) appendTrunc(buf []byte, prec int) []byte {
	digits := r.Digits()
	buf = strconv.AppendUint(buf, digits.Next(), 10)
	if prec <= 0 {
		return buf
	}
	buf = append(buf, '.')
	for _, d := range digits.Take(prec) {
		buf = append(buf, byte(d)+'0')
	}
	return buf
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -0.1(6)
//	%q:     "-0.1(6)"
//	%o:     -0.16̅
//	%r:     -1/6
//	%f:     -0.16666666666666666666
//
// The %o verb marks every repeating digit with a combining overline (U+0305)
// instead of parentheses.
// The %f verb prints the truncated expansion without a cycle marker.
// Its precision is the number of digits after the decimal point,
// 20 by default.
//
// The following format flags can be used with all verbs: '+', ' ', '-'.
// Width is measured in runes, every overline counts as one rune.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rational) Format(state fmt.State, verb rune) {
	// Arithmetic sign
	var buf []byte
	switch {
	case r.IsNeg():
		buf = append(buf, '-')
	case state.Flag('+'):
		buf = append(buf, '+')
	case state.Flag(' '):
		buf = append(buf, ' ')
	}

	// Body
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		buf = r.appendRepeating(buf, false)
	case 'o', 'O':
		buf = r.appendRepeating(buf, true)
	case 'r', 'R':
		buf = strconv.AppendUint(buf, uint64(r.num), 10)
		if !r.IsInt() {
			buf = append(buf, '/')
			buf = strconv.AppendUint(buf, uint64(r.denom()), 10)
		}
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = defaultFracDigits
		}
		buf = r.appendTrunc(buf, prec)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(rational.Rational="))
		state.Write([]byte(r.RatString()))
		state.Write([]byte(")"))
		return
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		buf = append(append([]byte{'"'}, buf...), '"')
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCount(buf); n > 0 {
			pad := make([]byte, n)
			for i := range pad {
				pad[i] = ' '
			}
			if state.Flag('-') {
				buf = append(buf, pad...)
			} else {
				buf = append(pad, buf...)
			}
		}
	}

	state.Write(buf)
}
