package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrExpansionConsumed is returned when an [Expansion] is used twice.
	ErrExpansionConsumed = errors.New("expansion already consumed")
	// ErrCycleTooLong is returned by [Expansion.RepeatingLimit] when the
	// expansion does not terminate or repeat within the given number of digits.
	ErrCycleTooLong = errors.New("repeating cycle too long")
)

// divider performs long division of num by den one decimal digit at a time.
// The first digit it produces is the whole part of num / den,
// every following digit is a single fractional digit.
type divider struct {
	rem     fint // the current remainder, or the numerator before the first step
	den     fint
	started bool
}

func newDivider(num, den fint) (divider, error) {
	if den == 0 {
		return divider{}, ErrInvalidDenominator
	}
	return divider{rem: num, den: den}, nil
}

// step produces the next digit and updates the remainder.
func (d *divider) step() fint {
	var q fint
	if !d.started {
		d.started = true
		q, d.rem, _ = d.rem.quoRem(d.den)
		return q
	}
	q, d.rem = d.rem.shiftQuoRem(d.den)
	return q
}

// Expansion is a single-use long-division engine that splits the decimal
// expansion of a non-negative fraction into its non-repeating part and its
// repeating cycle.
//
// An expansion consumes its own state while producing digits.
// It cannot be restarted or copied; build a new one with [NewExpansion]
// or [Rational.Expansion] for every request.
type Expansion struct {
	div  divider
	done bool
}

// NewExpansion returns an expansion of num / den.
//
// NewExpansion returns an error if den is 0.
func NewExpansion(num, den uint64) (*Expansion, error) {
	div, err := newDivider(fint(num), fint(den))
	if err != nil {
		return nil, fmt.Errorf("NewExpansion(%v, %v) failed: %w", num, den, err)
	}
	return &Expansion{div: div}, nil
}

// Repeating consumes the expansion and returns its digits split into two parts:
//
//   - prefix: the whole part followed by the non-repeating fractional digits;
//   - cycle: the repeating fractional digits, empty for terminating expansions.
//
// The first element of prefix is always the whole part, which may be
// greater than 9.
// All other elements of prefix and cycle are decimal digits.
// For example:
//
//	1/4  => [0 2 5], []
//	1/3  => [0],     [3]
//	1/6  => [0 1],   [6]
//	10/3 => [3],     [3]
//
// Every remainder is smaller than the denominator and a repeated remainder
// stops the division, so at most den digits are produced.
// Both time and memory grow linearly with the length of the cycle, which can
// be close to den: expanding 9223372036854775807/9223372036854775805 does not
// finish in practice.
// Use [Expansion.RepeatingLimit] when the denominator is not known to be small.
//
// Repeating returns an error if the expansion has already been consumed.
func (e *Expansion) Repeating() (prefix, cycle []uint64, err error) {
	return e.RepeatingLimit(0)
}

// RepeatingLimit is like [Expansion.Repeating], but it stops after producing
// limit digits.
// If the expansion neither terminates nor repeats within the limit,
// RepeatingLimit returns the digits produced so far as prefix, an empty cycle,
// and [ErrCycleTooLong].
// A limit of 0 or less means no limit.
func (e *Expansion) RepeatingLimit(limit int) (prefix, cycle []uint64, err error) {
	if e.done {
		return nil, nil, ErrExpansionConsumed
	}
	e.done = true

	var (
		digits []uint64
		seen   = make(map[fint]int) // remainder -> index of the digit that produced it
	)

	q := e.div.step()
	r := e.div.rem
	for r != 0 {
		if i, ok := seen[r]; ok {
			// Cycle
			digits = append(digits, uint64(q))
			return digits[:i+1], digits[i+1:], nil
		}
		if limit > 0 && len(digits) >= limit {
			return digits, nil, fmt.Errorf("%v digit(s) without a repetition: %w", len(digits), ErrCycleTooLong)
		}
		digits = append(digits, uint64(q))
		seen[r] = len(digits) - 1
		q = e.div.step()
		r = e.div.rem
	}

	// Terminating expansion
	digits = append(digits, uint64(q))
	return digits, []uint64{}, nil
}

// Digits is an unbounded stream over the decimal expansion of a non-negative
// fraction.
// The first call to [Digits.Next] returns the whole part, every following
// call returns the next fractional digit.
// Terminating expansions continue with zeros, so callers must bound
// the number of calls themselves.
//
// Digits is single-pass: it cannot be restarted or copied.
// Build a new stream with [NewDigits] or [Rational.Digits] instead.
type Digits struct {
	div divider
}

// NewDigits returns a digit stream of num / den.
//
// NewDigits returns an error if den is 0.
func NewDigits(num, den uint64) (*Digits, error) {
	div, err := newDivider(fint(num), fint(den))
	if err != nil {
		return nil, fmt.Errorf("NewDigits(%v, %v) failed: %w", num, den, err)
	}
	return &Digits{div: div}, nil
}

// Next returns the next digit of the stream.
func (d *Digits) Next() uint64 {
	return uint64(d.div.step())
}

// Take returns the next n digits of the stream.
func (d *Digits) Take(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	digits := make([]uint64, n)
	for i := range digits {
		digits[i] = d.Next()
	}
	return digits
}
