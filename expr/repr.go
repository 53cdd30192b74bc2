package expr

// Representation is a rendering hint carried by numeric nodes. It never
// affects numeric semantics, only how a value prints.
type Representation int

const (
	Fraction Representation = iota
	Decimal
)

func (r Representation) String() string {
	if r == Decimal {
		return "Decimal"
	}
	return "Fraction"
}

// Merge combines the hints of two operands: identical hints are
// preserved, differing hints collapse to Decimal.
func (r Representation) Merge(other Representation) Representation {
	if r == other {
		return r
	}
	return Decimal
}
