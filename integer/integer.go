package integer

import (
	"github.com/calebcase/base/alphabet"
)

// AppendUnsigned appends the fixed-width unsigned encoding of the low bits
// bits of v to dst and returns the extended slice. The output is exactly
// a.FixedLen(bits) characters, left-padded with the zero digit, so every
// bit pattern of the width round-trips regardless of sign interpretation.
func AppendUnsigned(dst []byte, a *alphabet.Alphabet, v uint64, bits int) []byte {
	if bits < 64 {
		v &= 1<<uint(bits) - 1
	}

	width := a.FixedLen(bits)
	radix := uint64(a.Radix())

	var buf [64]byte
	i := width
	for v > 0 {
		i--
		buf[i] = a.Digit(int(v % radix))
		v /= radix
	}
	for i > 0 {
		i--
		buf[i] = a.Digit(0)
	}

	return append(dst, buf[:width]...)
}

// Unsigned returns the fixed-width unsigned encoding of the low bits bits
// of v.
func Unsigned(a *alphabet.Alphabet, v uint64, bits int) string {
	return string(AppendUnsigned(nil, a, v, bits))
}

// AppendSigned appends the variable-width signed encoding of v to dst and
// returns the extended slice: an optional sign followed by the minimal
// digits of the magnitude. The magnitude of the minimum value of a width is
// computed with unsigned negation, so it never overflows.
func AppendSigned(dst []byte, a *alphabet.Alphabet, v int64) []byte {
	mag := uint64(v)
	if v < 0 {
		dst = append(dst, a.Negative())
		mag = -mag
	}

	return AppendMagnitude(dst, a, mag)
}

// Signed returns the variable-width signed encoding of v.
func Signed(a *alphabet.Alphabet, v int64) string {
	return string(AppendSigned(nil, a, v))
}

// AppendMagnitude appends the minimal unsigned digits of v with no padding
// and no sign. Zero is the single zero digit. This is also the signed form
// of the char width, which has no negative values.
func AppendMagnitude(dst []byte, a *alphabet.Alphabet, v uint64) []byte {
	radix := uint64(a.Radix())

	var buf [64]byte
	i := len(buf)
	for {
		i--
		buf[i] = a.Digit(int(v % radix))
		v /= radix
		if v == 0 {
			break
		}
	}

	return append(dst, buf[i:]...)
}

// Magnitude returns the minimal unsigned digits of v.
func Magnitude(a *alphabet.Alphabet, v uint64) string {
	return string(AppendMagnitude(nil, a, v))
}
