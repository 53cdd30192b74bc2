package number

import "math/big"

// truncRat truncates toward zero.
func truncRat(r *big.Rat) *big.Rat {
	q := new(big.Int).Quo(r.Num(), r.Denom())
	return new(big.Rat).SetInt(q)
}

// DecimalString renders r in exact decimal notation. It reports false
// when r has no finite decimal expansion, which happens whenever the
// reduced denominator has a prime factor other than 2 or 5.
func DecimalString(r *big.Rat) (string, bool) {
	digits, ok := decimalDigits(r.Denom())
	if !ok {
		return "", false
	}
	return r.FloatString(digits), true
}

// decimalDigits is the smallest k such that denom divides 10^k.
func decimalDigits(denom *big.Int) (int, bool) {
	twos := countFactor(denom, 2)
	rest := new(big.Int).Div(denom, pow(2, twos))
	fives := countFactor(rest, 5)
	rest.Div(rest, pow(5, fives))

	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

func countFactor(n *big.Int, f int64) int {
	factor := big.NewInt(f)
	rest := new(big.Int).Set(n)
	mod := new(big.Int)
	count := 0
	for rest.Sign() != 0 {
		q, m := new(big.Int).QuoRem(rest, factor, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		count++
	}
	return count
}

func pow(base int64, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(exp)), nil)
}
