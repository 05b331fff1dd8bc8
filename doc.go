/*
Package rational implements immutable exact rational numbers together with
an exact decimal expansion that identifies the repeating cycle.

# Representation

[Rational] is a struct with three fields:

  - Sign: a boolean indicating whether the rational is negative.
  - Numerator: an unsigned 64-bit integer, the magnitude of the numerator.
  - Denominator: an unsigned 64-bit integer, the magnitude of the denominator.

The numerical value of a rational is calculated as:

  - -Numerator / Denominator, if Sign is true.
  - Numerator / Denominator, if Sign is false.

Rationals are always kept in canonical form: the numerator and the denominator
have no common factor greater than 1, and 0 has no sign.
Unlike decimals, every rational value has exactly one representation,
so rationals can be compared with the == operator.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    Common factors are cancelled before multiplying, so that intermediate
    products stay small.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated using [big.Int] arithmetic and the result is
    reduced to canonical form.
    If both the numerator and the denominator of the reduced result fit into
    64 bits, the exact result is returned.
    Otherwise, an overflow error is returned.

Results are never rounded and never wrap around.

# Decimal Expansion

The decimal expansion of a rational is computed by long division.
A remainder that appears for the second time marks the start of the
repeating cycle.
Since every remainder is smaller than the denominator, the cycle is found
after at most Denominator digits.

The package provides two ways of consuming an expansion:

  - [Expansion]: single-use engine that splits the digits into the
    non-repeating part and the repeating cycle, see [Expansion.Repeating].
  - [Digits]: unbounded single-pass digit stream for truncated output,
    see [Digits.Next].

Both share the same long-division step, so they always agree on digit values.

# Conversions

The package provides methods for converting rationals:

  - from int64:
    [New], [NewFromInt64].
  - to string:
    [Rational.String], [Rational.RatString], [Rational.Format].
  - to float64:
    [Rational.Float64].

Parsing rationals from text is not supported.

# Errors

All methods are panic-free and pure, except for the Must* family.
Errors are returned in the following cases:

  - Invalid Denominator.
    [New], [NewExpansion] and [NewDigits] return [ErrInvalidDenominator]
    if the denominator is 0.

  - Division by Zero.
    [Rational.Inv] and [Rational.Quo] return [ErrDivisionByZero]
    instead of panicking.

  - Overflow.
    [Rational.Add], [Rational.Sub], [Rational.Mul] and [Rational.Quo]
    return [ErrOverflow] if the reduced result does not fit into 64 bits.

Errors are wrapped with the operands that caused them and can be inspected
with [errors.Is].

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package rational
