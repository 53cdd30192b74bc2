package number

import "math/big"

// Complex is an exact complex number with rational real and imaginary
// parts. Operations allocate fresh results and never mutate their
// receivers or arguments.
type Complex struct {
	Re *big.Rat
	Im *big.Rat
}

func FromInt(n *big.Int) Complex {
	return Complex{Re: new(big.Rat).SetInt(n), Im: new(big.Rat)}
}

func FromRat(r *big.Rat) Complex {
	return Complex{Re: new(big.Rat).Set(r), Im: new(big.Rat)}
}

func FromInt64(n int64) Complex {
	return Complex{Re: new(big.Rat).SetInt64(n), Im: new(big.Rat)}
}

// I is the imaginary unit.
func I() Complex {
	return Complex{Re: new(big.Rat), Im: new(big.Rat).SetInt64(1)}
}

func One() Complex { return FromInt64(1) }

func (z Complex) IsZero() bool { return z.Re.Sign() == 0 && z.Im.Sign() == 0 }

// IsReal reports whether the imaginary part is exactly zero.
func (z Complex) IsReal() bool { return z.Im.Sign() == 0 }

func (z Complex) Equal(w Complex) bool {
	return z.Re.Cmp(w.Re) == 0 && z.Im.Cmp(w.Im) == 0
}

func (z Complex) Add(w Complex) Complex {
	return Complex{
		Re: new(big.Rat).Add(z.Re, w.Re),
		Im: new(big.Rat).Add(z.Im, w.Im),
	}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{
		Re: new(big.Rat).Sub(z.Re, w.Re),
		Im: new(big.Rat).Sub(z.Im, w.Im),
	}
}

func (z Complex) Neg() Complex {
	return Complex{
		Re: new(big.Rat).Neg(z.Re),
		Im: new(big.Rat).Neg(z.Im),
	}
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z Complex) Mul(w Complex) Complex {
	ac := new(big.Rat).Mul(z.Re, w.Re)
	bd := new(big.Rat).Mul(z.Im, w.Im)
	ad := new(big.Rat).Mul(z.Re, w.Im)
	bc := new(big.Rat).Mul(z.Im, w.Re)
	return Complex{Re: ac.Sub(ac, bd), Im: ad.Add(ad, bc)}
}

// Div computes z/w via the conjugate. The divisor must be nonzero.
func (z Complex) Div(w Complex) Complex {
	norm := new(big.Rat).Add(
		new(big.Rat).Mul(w.Re, w.Re),
		new(big.Rat).Mul(w.Im, w.Im),
	)
	num := z.Mul(Complex{Re: w.Re, Im: new(big.Rat).Neg(w.Im)})
	return Complex{
		Re: num.Re.Quo(num.Re, norm),
		Im: num.Im.Quo(num.Im, norm),
	}
}

// Rem is the truncated-division remainder z - trunc(z/w)*w. The divisor
// must be nonzero.
func (z Complex) Rem(w Complex) Complex {
	q := z.Div(w).Trunc()
	return z.Sub(w.Mul(q))
}

// Trunc truncates both components toward zero.
func (z Complex) Trunc() Complex {
	return Complex{Re: truncRat(z.Re), Im: truncRat(z.Im)}
}

// PowInt raises z to an integer power by repeated squaring. The second
// result is false when the power does not exist (zero base with a
// negative exponent).
func (z Complex) PowInt(n int64) (Complex, bool) {
	un := uint64(n)
	if n < 0 {
		un = uint64(-(n + 1)) + 1
	}
	result := One()
	base := z
	for un > 0 {
		if un&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		un >>= 1
	}
	if n >= 0 {
		return result, true
	}
	if result.IsZero() {
		return Complex{}, false
	}
	return One().Div(result), true
}

// Int64 reports the value of z as a machine integer when z is real,
// integral, and within range.
func (z Complex) Int64() (int64, bool) {
	if !z.IsReal() || !z.Re.IsInt() {
		return 0, false
	}
	n := z.Re.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}
