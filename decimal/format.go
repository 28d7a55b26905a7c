package decimal

import (
	"strconv"

	"github.com/calebcase/base/alphabet"
)

// AppendGeneral appends the shortest round-trip rendering of v, choosing
// plain notation inside the General window and scientific outside it. A
// single-digit mantissa always gains a ".0", so at least two significant
// characters are shown. bits selects the float width (32 or 64).
func AppendGeneral(dst []byte, a *alphabet.Alphabet, v float64, bits int, marker byte) []byte {
	return appendWindowed(dst, a, v, bits, marker, GeneralLo, GeneralHi, false)
}

// General returns the general rendering of v.
func General(a *alphabet.Alphabet, v float64, bits int, marker byte) string {
	return string(AppendGeneral(nil, a, v, bits, marker))
}

// AppendFriendly is AppendGeneral with the wider Friendly window, keeping
// plain notation over the magnitudes people actually read.
func AppendFriendly(dst []byte, a *alphabet.Alphabet, v float64, bits int, marker byte) []byte {
	return appendWindowed(dst, a, v, bits, marker, FriendlyLo, FriendlyHi, false)
}

// Friendly returns the friendly rendering of v.
func Friendly(a *alphabet.Alphabet, v float64, bits int, marker byte) string {
	return string(AppendFriendly(nil, a, v, bits, marker))
}

// AppendScientific appends the shortest round-trip rendering of v in
// scientific notation regardless of magnitude.
func AppendScientific(dst []byte, a *alphabet.Alphabet, v float64, bits int, marker byte) []byte {
	f, special := shortest(v, bits)
	if special != "" {
		return appendSpecial(dst, a, f, special)
	}

	if f.neg {
		dst = append(dst, a.Negative())
	}

	return appendSci(dst, a, f, marker, false)
}

// Scientific returns the scientific rendering of v.
func Scientific(a *alphabet.Alphabet, v float64, bits int, marker byte) string {
	return string(AppendScientific(nil, a, v, bits, marker))
}

// AppendExact appends the shortest round-trip rendering of v with the
// mantissa digit characters drawn from the alphabet's first ten digits, so
// a scrambled alphabet obfuscates the value. Notation follows the General
// window; the decimal point, exponent marker, and exponent digits stay
// ASCII. Alphabets narrower than ten digits have no decimal digit set to
// map through and fall back to ASCII. The matched reader is ReadExact.
func AppendExact(dst []byte, a *alphabet.Alphabet, v float64, bits int, marker byte) []byte {
	return appendWindowed(dst, a, v, bits, marker, GeneralLo, GeneralHi, a.Radix() >= 10)
}

// Exact returns the exact rendering of v.
func Exact(a *alphabet.Alphabet, v float64, bits int, marker byte) string {
	return string(AppendExact(nil, a, v, bits, marker))
}

// AppendDecimal appends v in plain positional notation, never scientific.
//
// A non-negative precision fixes the fractional digit count exactly,
// correctly rounded and zero padded; a negative precision keeps the
// shortest digits. A positive limit is a hard cap on the total output:
// longer text is truncated to limit characters and shorter text is
// left-padded with the alphabet's padding character to exactly limit.
func AppendDecimal(dst []byte, a *alphabet.Alphabet, v float64, bits, precision, limit int) []byte {
	var scratch [40]byte
	tmp := scratch[:0]

	f, special := shortest(v, bits)
	switch {
	case special != "":
		tmp = appendSpecial(tmp, a, f, special)
	case precision >= 0:
		tmp = strconv.AppendFloat(tmp, v, 'f', precision, bits)
		if tmp[0] == '-' {
			tmp[0] = a.Negative()
		}
	default:
		if f.neg {
			tmp = append(tmp, a.Negative())
		}
		tmp = appendPlain(tmp, a, f, false)
	}

	if limit > 0 {
		if len(tmp) > limit {
			tmp = tmp[:limit]
		}
		for n := limit - len(tmp); n > 0; n-- {
			dst = append(dst, a.Padding())
		}
	}

	return append(dst, tmp...)
}

// Decimal returns the plain positional rendering of v.
func Decimal(a *alphabet.Alphabet, v float64, bits, precision, limit int) string {
	return string(AppendDecimal(nil, a, v, bits, precision, limit))
}

func appendWindowed(dst []byte, a *alphabet.Alphabet, v float64, bits int, marker byte, lo, hi int, mapped bool) []byte {
	f, special := shortest(v, bits)
	if special != "" {
		return appendSpecial(dst, a, f, special)
	}

	if f.neg {
		dst = append(dst, a.Negative())
	}

	if dp := f.dp(); lo <= dp && dp < hi {
		return appendPlain(dst, a, f, mapped)
	}

	return appendSci(dst, a, f, marker, mapped)
}

func appendSpecial(dst []byte, a *alphabet.Alphabet, f form, special string) []byte {
	if f.neg {
		dst = append(dst, a.Negative())
	}

	return append(dst, special...)
}

// put translates an ASCII digit through the alphabet when the mode maps
// mantissa digits.
func put(a *alphabet.Alphabet, c byte, mapped bool) byte {
	if mapped {
		return a.Digit(int(c - '0'))
	}

	return c
}

func appendPlain(dst []byte, a *alphabet.Alphabet, f form, mapped bool) []byte {
	dp := f.dp()
	nd := len(f.digits)

	switch {
	case dp <= 0:
		dst = append(dst, put(a, '0', mapped), '.')
		for j := 0; j < -dp; j++ {
			dst = append(dst, put(a, '0', mapped))
		}
		for _, c := range f.digits {
			dst = append(dst, put(a, c, mapped))
		}
	case dp >= nd:
		for _, c := range f.digits {
			dst = append(dst, put(a, c, mapped))
		}
		for j := nd; j < dp; j++ {
			dst = append(dst, put(a, '0', mapped))
		}
		dst = append(dst, '.', put(a, '0', mapped))
	default:
		for _, c := range f.digits[:dp] {
			dst = append(dst, put(a, c, mapped))
		}
		dst = append(dst, '.')
		for _, c := range f.digits[dp:] {
			dst = append(dst, put(a, c, mapped))
		}
	}

	return dst
}

func appendSci(dst []byte, a *alphabet.Alphabet, f form, marker byte, mapped bool) []byte {
	dst = append(dst, put(a, f.digits[0], mapped), '.')
	if len(f.digits) == 1 {
		dst = append(dst, put(a, '0', mapped))
	} else {
		for _, c := range f.digits[1:] {
			dst = append(dst, put(a, c, mapped))
		}
	}
	dst = append(dst, marker)

	return strconv.AppendInt(dst, int64(f.exp), 10)
}
