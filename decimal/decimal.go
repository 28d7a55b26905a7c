package decimal

import (
	"math"
	"strconv"
)

// Notation windows. Plain positional notation is used when the number of
// digits left of the decimal point (which is zero or negative for values
// below one) falls inside [Lo, Hi); scientific notation is used outside.
// These are observable policy constants: tests assert the exact boundary.
const (
	GeneralLo = -3
	GeneralHi = 7

	FriendlyLo = -10
	FriendlyHi = 10
)

// DefaultExpMarker is the exponent marker emitted by scientific notation
// unless the caller configures another one.
const DefaultExpMarker byte = 'E'

// Special value literals.
const (
	LiteralNaN      = "NaN"
	LiteralInfinity = "Infinity"
)

// form is the decimal intermediate form of a finite floating point value:
// sign, shortest correctly-rounded digit sequence, and the decimal exponent
// of the leading digit. The value is d₀.d₁d₂… × 10^exp. A form is built,
// consumed, and discarded within a single call; nothing retains one.
type form struct {
	neg    bool
	digits []byte // ASCII '0'..'9'
	exp    int
}

// dp returns the count of digits left of the decimal point in plain
// notation. It is zero or negative for values below one.
func (f form) dp() int {
	return f.exp + 1
}

// shortest expands v into its decimal intermediate form: the unique
// shortest digit sequence that parses back to the same bit pattern,
// rounded half-to-even at the boundary. The expansion itself is
// strconv's shortest formatting (Ryu); this function only restates its
// scientific rendering as (sign, digits, exponent).
//
// special is non-empty for NaN and infinities, with f.neg carrying the
// infinity sign.
func shortest(v float64, bits int) (f form, special string) {
	switch {
	case math.IsNaN(v):
		return f, LiteralNaN
	case math.IsInf(v, 0):
		f.neg = v < 0
		return f, LiteralInfinity
	}

	var scratch [32]byte
	b := strconv.AppendFloat(scratch[:0], v, 'e', -1, bits)

	i := 0
	if b[i] == '-' {
		f.neg = true
		i++
	}

	digits := make([]byte, 0, 17)
	for ; i < len(b) && b[i] != 'e'; i++ {
		if b[i] == '.' {
			continue
		}
		digits = append(digits, b[i])
	}
	f.digits = digits

	// Exponent: 'e' then a mandatory sign and at least two digits.
	i++
	expNeg := b[i] == '-'
	i++
	exp := 0
	for ; i < len(b); i++ {
		exp = exp*10 + int(b[i]-'0')
	}
	if expNeg {
		exp = -exp
	}
	f.exp = exp

	return f, ""
}
