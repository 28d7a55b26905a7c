package alphabet

import "math/rand/v2"

// signExclusions are characters never drawn as a scrambled sign on top of
// the digit and formatter collisions: quoting characters are common batch
// group delimiters and backslash is the readable-literal escape.
const signExclusions = `'"\` + "`"

// Scramble returns a new Alphabet with the digit order of src permuted and
// the negative sign re-drawn from the printable ASCII characters that do
// not collide with a digit, the padding character, or anything the decimal
// formatter emits. The result is fully determined by the random source, so
// a seeded source reproduces the same alphabet.
//
// Scrambled alphabets satisfy every construction invariant, so all codec
// round-trip laws hold under them.
func Scramble(rng *rand.Rand, src *Alphabet) *Alphabet {
	d := []byte(src.digits)
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})

	// Scan the printable range from a random offset and take the first
	// viable sign. A full-range alphabet has no viable printable sign
	// left, in which case the source's sign is kept.
	negative := src.negative
	offset := rng.IntN(94)
	for i := 0; i < 94; i++ {
		c := byte('!' + (offset+i)%94)
		if src.Value(c) != -1 || reservedSign(c) || c == src.padding {
			continue
		}
		if containsByte(signExclusions, c) {
			continue
		}

		negative = c
		break
	}

	a, err := New(string(d), src.radix, src.foldCase, negative, src.padding)
	if err != nil {
		// Unreachable for a valid source alphabet.
		panic(err)
	}

	return a
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}

	return false
}
