package alphabet

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of alphabet configuration errors. Construction is the
// only fallible operation in this module; decoding never returns an error.
var Error = errs.Class("alphabet")

// ErrReserved is returned when a digit or sign character collides with one
// of the characters the decimal formatter emits.
var ErrReserved = Error.New("reserved character")

// MinRadix and MaxRadix bound the supported alphabet sizes. MaxRadix covers
// the full printable ASCII range (33 through 126).
const (
	MinRadix = 2
	MaxRadix = 94
)

// reservedSign reports characters that may never be the negative sign:
// they appear literally in decimal formatter output.
func reservedSign(c byte) bool {
	return c == '.' || c == '+' || c == 'e' || c == 'E'
}

// Alphabet is an immutable digit alphabet.
type Alphabet struct {
	digits   string
	radix    int
	foldCase bool
	negative byte
	padding  byte

	// values maps an ASCII character to its digit value, -1 when the
	// character is not a digit. Fold-case alphabets hold entries for
	// both cases of a letter.
	values [128]int8

	// fixed digit counts for the unsigned encodings of 8, 16, 32, and
	// 64 bit values.
	fixed [4]int
}

// New builds an Alphabet from the first radix characters of digits.
//
// The digit characters must be unique printable ASCII (folded to one case
// when foldCase is set) and may not include '.'. The negative sign and
// padding characters must not be digits and must differ from each other,
// and the sign may not be one of '.', '+', 'e', or 'E', since those appear
// in decimal formatter output.
func New(digits string, radix int, foldCase bool, negative, padding byte) (_ *Alphabet, err error) {
	defer Error.WrapP(&err)

	if radix < MinRadix || radix > MaxRadix {
		return nil, Error.New("radix out of range: %d", radix)
	}
	if radix > len(digits) {
		return nil, Error.New("not enough digits: radix=%d digits=%d", radix, len(digits))
	}

	a := &Alphabet{
		digits:   digits[:radix],
		radix:    radix,
		foldCase: foldCase,
		negative: negative,
		padding:  padding,
	}

	for i := range a.values {
		a.values[i] = -1
	}

	for i := 0; i < radix; i++ {
		c := digits[i]
		if c < '!' || c > '~' {
			return nil, Error.New("digit %d is not printable ASCII: %q", i, c)
		}
		if c == '.' {
			return nil, oops.Trace(ErrReserved)
		}
		if a.values[c] != -1 {
			return nil, Error.New("duplicate digit %q", c)
		}
		a.values[c] = int8(i)

		if foldCase {
			f := foldByte(c)
			if f != c {
				if a.values[f] != -1 {
					return nil, Error.New("case-folded duplicate digit %q", c)
				}
				a.values[f] = int8(i)
			}
		}
	}

	if negative >= 128 || a.values[negative] != -1 {
		return nil, Error.New("negative sign collides with a digit: %q", negative)
	}
	if reservedSign(negative) {
		return nil, oops.Trace(ErrReserved)
	}
	if padding >= 128 || a.values[padding] != -1 {
		return nil, Error.New("padding collides with a digit: %q", padding)
	}
	if padding == negative {
		// Padded negative length-limited output would be ambiguous.
		return nil, Error.New("padding collides with the negative sign: %q", padding)
	}

	for i, bits := range []uint{8, 16, 32, 64} {
		a.fixed[i] = digitsFor(bits, uint64(radix))
	}

	return a, nil
}

// MustNew is New, panicking on configuration errors. It backs the named
// package-level alphabets.
func MustNew(digits string, radix int, foldCase bool, negative, padding byte) *Alphabet {
	a, err := New(digits, radix, foldCase, negative, padding)
	if err != nil {
		panic(err)
	}

	return a
}

// digitsFor returns the digit count of the largest unsigned value of the
// given bit width in the given radix. Repeated division avoids overflow at
// width 64.
func digitsFor(bits uint, radix uint64) (n int) {
	v := ^uint64(0) >> (64 - bits)
	for v > 0 {
		v /= radix
		n++
	}

	return n
}

func foldByte(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	}

	return c
}

// Radix returns the number of digits in the alphabet.
func (a *Alphabet) Radix() int {
	return a.radix
}

// CaseInsensitive reports whether decoding folds letter case.
func (a *Alphabet) CaseInsensitive() bool {
	return a.foldCase
}

// Digit returns the canonical character for digit value i.
func (a *Alphabet) Digit(i int) byte {
	return a.digits[i]
}

// Digits returns the canonical digit characters in order.
func (a *Alphabet) Digits() string {
	return a.digits
}

// Value returns the digit value of c, or -1 when c is not a digit of this
// alphabet.
func (a *Alphabet) Value(c byte) int {
	if c >= 128 {
		return -1
	}

	return int(a.values[c])
}

// Negative returns the sign character used for negative values.
func (a *Alphabet) Negative() byte {
	return a.negative
}

// Padding returns the character used to pad length-limited output.
func (a *Alphabet) Padding() byte {
	return a.padding
}

// FixedLen returns the constant output length of the unsigned encoding for
// the given bit width. The length depends only on the radix and the width,
// never on the value.
func (a *Alphabet) FixedLen(bits int) int {
	switch {
	case bits <= 8:
		return a.fixed[0]
	case bits <= 16:
		return a.fixed[1]
	case bits <= 32:
		return a.fixed[2]
	default:
		return a.fixed[3]
	}
}
