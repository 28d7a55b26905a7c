package decimal

import (
	"errors"
	"math"
	"strconv"

	"github.com/calebcase/base/alphabet"
)

// Read decodes s[start:end) as a floating point value of the given bit
// width. It accepts the output of every formatting mode with ASCII mantissa
// digits (general, scientific, decimal, friendly) plus bare decimal
// literals, the NaN and Infinity literals, and either the alphabet's sign
// or an ASCII '-'. Leading padding characters, as emitted by the
// length-limited decimal mode, are skipped.
//
// Read never fails: malformed input yields 0. Values beyond the width's
// range saturate to the infinities, matching the nearest-representable
// contract.
func Read(a *alphabet.Alphabet, s string, start, end int, marker byte, bits int) float64 {
	return read(a, s, start, end, marker, bits, false)
}

// ReadExact is Read for the Exact mode: mantissa digit characters are
// translated back through the alphabet's first ten digits. Alphabets
// narrower than ten digits fall back to ASCII, mirroring AppendExact.
func ReadExact(a *alphabet.Alphabet, s string, start, end int, marker byte, bits int) float64 {
	return read(a, s, start, end, marker, bits, a.Radix() >= 10)
}

func read(a *alphabet.Alphabet, s string, start, end int, marker byte, bits int, mapped bool) float64 {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return 0
	}

	i := start
	for i < end && s[i] == a.Padding() {
		// Length-limited output is left-padded; padding is lossless.
		i++
	}
	if i >= end {
		return 0
	}

	neg := false
	if c := s[i]; c == a.Negative() {
		neg = true
		i++
	} else if c == '-' {
		// ASCII '-' is accepted as a sign unless the alphabet uses it
		// as a mantissa digit, as a scrambled alphabet may.
		if _, ok := digitValue(a, c, mapped); !ok {
			neg = true
			i++
		}
	}
	if i >= end {
		return 0
	}

	switch s[i:end] {
	case LiteralNaN:
		return math.NaN()
	case LiteralInfinity:
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// Normalize into plain ASCII and let strconv round to nearest.
	var scratch [64]byte
	buf := scratch[:0]
	if neg {
		buf = append(buf, '-')
	}

	sawDigit := false
	sawDot := false
	for ; i < end; i++ {
		c := s[i]

		if d, ok := digitValue(a, c, mapped); ok {
			buf = append(buf, '0'+byte(d))
			sawDigit = true
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			buf = append(buf, '.')
			continue
		}
		if c == marker || c == 'e' || c == 'E' {
			break
		}

		return 0
	}
	if !sawDigit {
		return 0
	}

	if i < end {
		// Exponent: marker, optional ASCII sign, ASCII digits.
		i++
		buf = append(buf, 'e')

		if i < end && (s[i] == '+' || s[i] == '-') {
			buf = append(buf, s[i])
			i++
		}
		if i >= end {
			return 0
		}
		for ; i < end; i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return 0
			}
			buf = append(buf, c)
		}
	}

	v, err := strconv.ParseFloat(string(buf), bits)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return v
		}

		return 0
	}

	return v
}

// digitValue resolves a mantissa digit character: through the alphabet's
// first ten digits in mapped (Exact) mode, as ASCII otherwise.
func digitValue(a *alphabet.Alphabet, c byte, mapped bool) (int, bool) {
	if mapped {
		d := a.Value(c)
		if d >= 0 && d < 10 {
			return d, true
		}

		return 0, false
	}

	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}

	return 0, false
}
