package integer

import (
	"github.com/calebcase/base/alphabet"
)

// Read decodes s[start:end) as a signed value of the given bit width.
//
// Read never fails: an empty range, an out-of-alphabet character, a second
// sign, or a magnitude that overflows the width all yield 0. This silently
// masks corruption; callers that need strict validation must re-encode and
// compare.
//
// The textual form is detected from the text itself. A leading sign means
// the signed form: the digits are a magnitude of at most 2^(bits-1) and the
// result is its negation, so the minimum value of the width reads back
// without overflow. No sign means the digits are a magnitude of at most
// 2^bits - 1 reinterpreted as the width's two's complement bit pattern, so
// the fixed-width unsigned encoding of a negative value reads back to that
// value.
func Read(a *alphabet.Alphabet, s string, start, end, bits int) int64 {
	mag, neg, ok := scan(a, s, start, end, true)
	if !ok {
		return 0
	}

	if neg {
		limit := uint64(1) << uint(bits-1)
		if mag > limit {
			return 0
		}

		// Unsigned negation: exact even when mag is 2^63.
		return int64(-mag)
	}

	if bits < 64 && mag > 1<<uint(bits)-1 {
		return 0
	}

	// Sign-extend the width's bit pattern.
	return int64(mag<<uint(64-bits)) >> uint(64-bits)
}

// ReadUint decodes s[start:end) as an unsigned value of the given bit
// width. No sign is accepted; malformed input yields 0. This is the char
// reader for bits of 16.
func ReadUint(a *alphabet.Alphabet, s string, start, end, bits int) uint64 {
	mag, _, ok := scan(a, s, start, end, false)
	if !ok {
		return 0
	}
	if bits < 64 && mag > 1<<uint(bits)-1 {
		return 0
	}

	return mag
}

// scan accumulates the magnitude of s[start:end) in the alphabet's radix.
// Bounds are clamped to the string. ok is false on any malformation.
func scan(a *alphabet.Alphabet, s string, start, end int, allowSign bool) (mag uint64, neg, ok bool) {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return 0, false, false
	}

	i := start
	if allowSign && s[i] == a.Negative() {
		neg = true
		i++

		if i >= end {
			return 0, false, false
		}
	}

	radix := uint64(a.Radix())
	for ; i < end; i++ {
		d := a.Value(s[i])
		if d < 0 {
			// Not a digit. A second sign lands here too.
			return 0, false, false
		}

		if mag > (^uint64(0)-uint64(d))/radix {
			return 0, false, false
		}
		mag = mag*radix + uint64(d)
	}

	return mag, neg, true
}
