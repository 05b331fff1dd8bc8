package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// Rational type is a representation of an exact rational number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the rational is negative.
//   - Numerator: an unsigned integer magnitude, possibly 0.
//   - Denominator: a positive unsigned integer magnitude.
//
// Every rational returned by this package is in canonical form:
// the numerator and the denominator have no common factor greater than 1,
// and 0 is always represented by the zero value, which has no sign and
// reports a denominator of 1.
// Consequently, two rationals are equal if and only if they are equal
// according to the == operator.
type Rational struct {
	neg bool // indicates whether the rational is negative
	num fint // the magnitude of the numerator
	den fint // the magnitude of the denominator, 0 only for the zero rational
}

var (
	// ErrInvalidDenominator is returned when a rational or an expansion is
	// constructed with a zero denominator.
	ErrInvalidDenominator = errors.New("denominator must not be zero")
	// ErrDivisionByZero is returned by [Rational.Inv] and [Rational.Quo]
	// when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when the numerator or the denominator of
	// the result does not fit into 64 bits.
	ErrOverflow = errors.New("magnitude overflow")
)

// newRational reduces num / den to canonical form.
func newRational(neg bool, num, den fint) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrInvalidDenominator
	}
	if num == 0 {
		return Rational{}, nil
	}
	if g := num.gcd(den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{neg: neg, num: num, den: den}, nil
}

// newRationalFromBint reduces num / den to canonical form and checks that
// both magnitudes fit into 64 bits.
// The sign of the result is the sign of num * den.
func newRationalFromBint(num, den *bint) (Rational, error) {
	if den.sign() == 0 {
		return Rational{}, ErrInvalidDenominator
	}
	neg := num.sign()*den.sign() < 0
	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	if g.sign() != 0 {
		num.quo(num, g)
		den.quo(den, g)
	}
	n, ok := num.fint()
	if !ok {
		return Rational{}, fmt.Errorf("numerator %v: %w", num.string(), ErrOverflow)
	}
	d, ok := den.fint()
	if !ok {
		return Rational{}, fmt.Errorf("denominator %v: %w", den.string(), ErrOverflow)
	}
	return newRational(neg, n, d)
}

// New returns a rational equal to num / den in canonical form.
// The sign of the result is the sign of num * den.
//
// New returns an error if den is 0.
func New(num, den int64) (Rational, error) {
	neg := (num < 0) != (den < 0)
	r, err := newRational(neg, abs(num), abs(den))
	if err != nil {
		return Rational{}, fmt.Errorf("New(%v, %v) failed: %w", num, den, err)
	}
	return r, nil
}

// MustNew is like [New] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// NewFromInt64 returns a rational equal to n.
func NewFromInt64(n int64) Rational {
	if n == 0 {
		return Rational{}
	}
	return Rational{neg: n < 0, num: abs(n), den: 1}
}

// Num returns the magnitude of the numerator of r.
// Also see method [Rational.Sign].
func (r Rational) Num() uint64 {
	return uint64(r.num)
}

// Den returns the denominator of r.
// The result is always positive.
func (r Rational) Den() uint64 {
	return uint64(r.denom())
}

func (r Rational) denom() fint {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rational) Sign() int {
	switch {
	case r.num == 0:
		return 0
	case r.neg:
		return -1
	}
	return 1
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsNeg returns true if r < 0.
func (r Rational) IsNeg() bool {
	return r.neg && r.num != 0
}

// IsPos returns true if r > 0.
func (r Rational) IsPos() bool {
	return !r.neg && r.num != 0
}

// IsInt returns true if the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.denom() == 1
}

// Float64 returns the nearest binary floating-point number to r.
// The conversion is a convenience and carries no precision guarantee
// beyond that of float64.
func (r Rational) Float64() float64 {
	// Fast path: both magnitudes are exactly representable
	const maxExact = 1 << 53
	if r.num <= maxExact && r.denom() <= maxExact {
		f := float64(r.num) / float64(r.denom())
		if r.IsNeg() {
			f = -f
		}
		return f
	}
	// Slow path
	num := new(big.Int).SetUint64(uint64(r.num))
	if r.IsNeg() {
		num.Neg(num)
	}
	den := new(big.Int).SetUint64(uint64(r.denom()))
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	return Rational{num: r.num, den: r.den}
}

// Neg returns r with opposite sign.
func (r Rational) Neg() Rational {
	if r.num == 0 {
		return Rational{}
	}
	return Rational{neg: !r.neg, num: r.num, den: r.den}
}

// Inv returns the reciprocal of r, that is 1 / r.
//
// Inv returns an error if r is 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("computing [1 / %v]: %w", r.RatString(), ErrDivisionByZero)
	}
	return Rational{neg: r.neg, num: r.denom(), den: r.num}, nil
}

// Add returns the exact sum r + e.
//
// Add returns an overflow error if the numerator or the denominator of
// the reduced sum does not fit into 64 bits.
func (r Rational) Add(e Rational) (Rational, error) {
	f, err := r.addFint(e)
	if err != nil {
		f, err = r.addBint(e)
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v + %v]: %w", r.RatString(), e.RatString(), err)
		}
	}
	return f, nil
}

// addFint computes the sum of r and e using uint64 arithmetic.
// Common factors of the denominators are cancelled first, so that
// only sums with a large reduced denominator can overflow.
func (r Rational) addFint(e Rational) (Rational, error) {
	rden, eden := r.denom(), e.denom()
	g := rden.gcd(eden)
	rq, eq := rden/g, eden/g

	// Denominator
	den, ok := rden.mul(eq)
	if !ok {
		return Rational{}, ErrOverflow
	}

	// Numerator
	x, ok := r.num.mul(eq)
	if !ok {
		return Rational{}, ErrOverflow
	}
	y, ok := e.num.mul(rq)
	if !ok {
		return Rational{}, ErrOverflow
	}
	var (
		num fint
		neg bool
	)
	switch {
	case r.IsNeg() == e.IsNeg():
		num, ok = x.add(y)
		if !ok {
			return Rational{}, ErrOverflow
		}
		neg = r.IsNeg()
	case x >= y:
		num = x.dist(y)
		neg = r.IsNeg()
	default:
		num = x.dist(y)
		neg = e.IsNeg()
	}

	return newRational(neg, num, den)
}

// addBint computes the sum of r and e using *big.Int arithmetic.
func (r Rational) addBint(e Rational) (Rational, error) {
	rnum, rden := getBint(), getBint()
	defer putBint(rnum)
	defer putBint(rden)
	rnum.setSigned(r.IsNeg(), r.num)
	rden.setFint(r.denom())

	enum, eden := getBint(), getBint()
	defer putBint(enum)
	defer putBint(eden)
	enum.setSigned(e.IsNeg(), e.num)
	eden.setFint(e.denom())

	// Numerator
	num := getBint()
	defer putBint(num)
	num.mul(rnum, eden) // num = r.num * e.den
	enum.mul(enum, rden)
	num.add(num, enum) // num = r.num * e.den + e.num * r.den

	// Denominator
	den := getBint()
	defer putBint(den)
	den.mul(rden, eden) // den = r.den * e.den

	return newRationalFromBint(num, den)
}

// Sub returns the exact difference r - e.
//
// Sub returns an overflow error if the numerator or the denominator of
// the reduced difference does not fit into 64 bits.
func (r Rational) Sub(e Rational) (Rational, error) {
	f, err := r.Add(e.Neg())
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v - %v]: %w", r.RatString(), e.RatString(), errors.Unwrap(err))
	}
	return f, nil
}

// Mul returns the exact product r * e.
//
// Mul returns an overflow error if the numerator or the denominator of
// the reduced product does not fit into 64 bits.
func (r Rational) Mul(e Rational) (Rational, error) {
	f, err := r.mulFint(e)
	if err != nil {
		f, err = r.mulBint(e)
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v * %v]: %w", r.RatString(), e.RatString(), err)
		}
	}
	return f, nil
}

// mulFint computes the product of r and e using uint64 arithmetic.
// Cross factors are cancelled first, so that the result is already in
// canonical form and only products that do not fit into 64 bits overflow.
func (r Rational) mulFint(e Rational) (Rational, error) {
	rden, eden := r.denom(), e.denom()
	g1 := r.num.gcd(eden)
	g2 := e.num.gcd(rden)

	// Numerator
	num, ok := (r.num / g1).mul(e.num / g2)
	if !ok {
		return Rational{}, ErrOverflow
	}

	// Denominator
	den, ok := (rden / g2).mul(eden / g1)
	if !ok {
		return Rational{}, ErrOverflow
	}

	return newRational(r.IsNeg() != e.IsNeg(), num, den)
}

// mulBint computes the product of r and e using *big.Int arithmetic.
func (r Rational) mulBint(e Rational) (Rational, error) {
	rnum, rden := getBint(), getBint()
	defer putBint(rnum)
	defer putBint(rden)
	rnum.setSigned(r.IsNeg(), r.num)
	rden.setFint(r.denom())

	enum, eden := getBint(), getBint()
	defer putBint(enum)
	defer putBint(eden)
	enum.setSigned(e.IsNeg(), e.num)
	eden.setFint(e.denom())

	// Numerator
	num := getBint()
	defer putBint(num)
	num.mul(rnum, enum)

	// Denominator
	den := getBint()
	defer putBint(den)
	den.mul(rden, eden)

	return newRationalFromBint(num, den)
}

// Quo returns the exact quotient r / e.
//
// Quo returns an error if:
//   - e is 0;
//   - the numerator or the denominator of the reduced quotient does not
//     fit into 64 bits.
func (r Rational) Quo(e Rational) (Rational, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r.RatString(), e.RatString(), ErrDivisionByZero)
	}

	// General case
	inv, err := e.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r.RatString(), e.RatString(), err)
	}
	f, err := r.mulFint(inv)
	if err != nil {
		f, err = r.mulBint(inv)
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r.RatString(), e.RatString(), err)
		}
	}
	return f, nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
func (r Rational) Cmp(e Rational) int {
	rs, es := r.Sign(), e.Sign()
	switch {
	case rs < es:
		return -1
	case rs > es:
		return 1
	case rs == 0:
		return 0
	}
	// Same sign, compare |r.num| * e.den with |e.num| * r.den
	c := cmpProd(r.num, e.denom(), e.num, r.denom())
	if rs < 0 {
		return -c
	}
	return c
}

// Equal returns true if r == e.
func (r Rational) Equal(e Rational) bool {
	return r.Cmp(e) == 0
}

// Expansion returns a fresh single-use long-division engine over |r|.
func (r Rational) Expansion() *Expansion {
	e, err := NewExpansion(uint64(r.num), uint64(r.denom()))
	if err != nil {
		panic(fmt.Sprintf("%v.Expansion() failed: %v", r.RatString(), err)) // unreachable
	}
	return e
}

// Digits returns a fresh unbounded digit stream over |r|.
func (r Rational) Digits() *Digits {
	d, err := NewDigits(uint64(r.num), uint64(r.denom()))
	if err != nil {
		panic(fmt.Sprintf("%v.Digits() failed: %v", r.RatString(), err)) // unreachable
	}
	return d
}

// Repeating returns the decimal expansion of |r| split into the
// non-repeating part and the repeating cycle.
// See [Expansion.Repeating] for details.
//
// Time and memory grow with the length of the cycle, which can be close to
// the denominator. Use [Rational.Expansion] with [Expansion.RepeatingLimit]
// for large denominators.
func (r Rational) Repeating() (prefix, cycle []uint64) {
	prefix, cycle, err := r.Expansion().Repeating()
	if err != nil {
		panic(fmt.Sprintf("%v.Repeating() failed: %v", r.RatString(), err)) // unreachable
	}
	return prefix, cycle
}

// RatString returns the fraction form of r, such as "-7/2".
// The denominator is omitted for integers.
func (r Rational) RatString() string {
	buf := make([]byte, 0, 42)
	if r.IsNeg() {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, uint64(r.num), 10)
	if !r.IsInt() {
		buf = append(buf, '/')
		buf = strconv.AppendUint(buf, uint64(r.denom()), 10)
	}
	return string(buf)
}
