package rational

import (
	"math/big"
	"math/bits"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = ^fint(0)

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	s, c := bits.Add64(uint64(x), uint64(y), 0)
	if c != 0 {
		return 0, false
	}
	return fint(s), true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		return 0, false
	}
	return fint(lo), true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x fint) quoRem(y fint) (q, r fint, ok bool) {
	if y == 0 {
		return 0, 0, false
	}
	q = x / y
	r = x - q*y
	return q, r, true
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

// gcd calculates the greatest common divisor of x and y
// using Euclid's algorithm.
// gcd(0, y) is y, and gcd(0, 0) is 0.
func (x fint) gcd(y fint) fint {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// shiftQuoRem calculates q = ⌊10x / y⌋, r = 10x - y * q.
// The product 10x is computed with 128 bits, so it cannot overflow.
// shiftQuoRem assumes that x < y, which guarantees that q is a single
// decimal digit.
func (x fint) shiftQuoRem(y fint) (q, r fint) {
	hi, lo := bits.Mul64(uint64(x), 10)
	qq, rr := bits.Div64(hi, lo, uint64(y))
	return fint(qq), fint(rr)
}

// cmpProd compares a * b and c * d using 128-bit products and returns:
//
//	-1 if a * b < c * d
//	 0 if a * b == c * d
//	+1 if a * b > c * d
func cmpProd(a, b, c, d fint) int {
	xhi, xlo := bits.Mul64(uint64(a), uint64(b))
	yhi, ylo := bits.Mul64(uint64(c), uint64(d))
	switch {
	case xhi < yhi:
		return -1
	case xhi > yhi:
		return 1
	case xlo < ylo:
		return -1
	case xlo > ylo:
		return 1
	}
	return 0
}

// abs returns the magnitude of x.
// abs(math.MinInt64) is 2^63, which is representable as fint.
func abs(x int64) fint {
	if x < 0 {
		return fint(-uint64(x))
	}
	return fint(x)
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// setSigned sets z = -x if neg is true, z = x otherwise.
func (z *bint) setSigned(neg bool, x fint) {
	z.setFint(x)
	if neg {
		z.neg(z)
	}
}

// fint converts |z| to uint64 and checks overflow.
func (z *bint) fint() (f fint, ok bool) {
	b := (*big.Int)(z)
	if b.Sign() < 0 {
		a := getBint()
		defer putBint(a)
		a.abs(z)
		b = (*big.Int)(a)
	}
	if !b.IsUint64() {
		return 0, false
	}
	return fint(b.Uint64()), true
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = x / y, truncated towards zero.
func (z *bint) quo(x, y *bint) {
	r := getBint()
	defer putBint(r)
	// Passing r to prevent heap allocations.
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// gcd calculates z = gcd(|x|, |y|).
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
