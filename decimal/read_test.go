package decimal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/base/alphabet"
)

func TestReadLenient(t *testing.T) {
	type TC struct {
		name string
		s    string
		want float64
	}

	tcs := []TC{
		{"empty", "", 0},
		{"plain", "3.14", 3.14},
		{"negative plain", "-2.5", -2.5},
		{"scientific", "1.5E2", 150},
		{"lowercase marker", "1.5e2", 150},
		{"explicit plus exponent", "1.5E+2", 150},
		{"negative exponent", "2.0E-3", 0.002},
		{"bare integer", "42", 42},
		{"leading point", ".5", 0.5},
		{"trailing point", "1.", 1},
		{"general tail", "123456.0", 123456},
		{"sign only", "-", 0},
		{"double sign", "--1", 0},
		{"double point", "1..5", 0},
		{"point only", ".", 0},
		{"bare marker", "1.5E", 0},
		{"garbage", "12a4", 0},
		{"garbage exponent", "1E2x", 0},
		{"nan", "NaN", math.NaN()},
		{"infinity", "Infinity", math.Inf(1)},
		{"negative infinity", "-Infinity", math.Inf(-1)},
		{"misspelled infinity", "Inf", 0},
		{"overflow saturates", "1E400", math.Inf(1)},
		{"negative overflow saturates", "-1E400", math.Inf(-1)},
		{"underflow", "1E-400", 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := Read(alphabet.Decimal, tc.s, 0, len(tc.s), DefaultExpMarker, 64)

			if math.IsNaN(tc.want) {
				require.True(t, math.IsNaN(got))
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadRange(t *testing.T) {
	s := "[3.14]"

	require.Equal(t, 3.14, Read(alphabet.Decimal, s, 1, 5, 'E', 64))
	require.Equal(t, 0.0, Read(alphabet.Decimal, s, 0, len(s), 'E', 64))
	require.Equal(t, 3.14, Read(alphabet.Decimal, "3.14", -3, 99, 'E', 64))
}

func TestReadCustomSign(t *testing.T) {
	// The alphabet's sign and ASCII '-' are both accepted.
	require.Equal(t, -0.5, Read(alphabet.URISafe, "!0.5", 0, 4, '@', 64))
	require.Equal(t, -0.5, Read(alphabet.URISafe, "-0.5", 0, 4, '@', 64))
}

func TestReadExactDashDigit(t *testing.T) {
	// A scrambled alphabet may hold '-' among its first ten digits. The
	// digit interpretation wins over the ASCII sign leniency, so Exact
	// output whose leading mantissa digit maps to '-' still reads back.
	a := alphabet.MustNew("0123-56789ABCDEF", 16, false, '!', ' ')

	s := Exact(a, 4.5, 64, '@')
	require.Equal(t, "-.5", s)
	require.Equal(t, 4.5, ReadExact(a, s, 0, len(s), '@', 64))

	s = Exact(a, -4.5, 64, '@')
	require.Equal(t, "!-.5", s)
	require.Equal(t, -4.5, ReadExact(a, s, 0, len(s), '@', 64))

	for _, v := range []float64{0.4, 4, -4, 44.25, 4e-20, -4.5e20} {
		s := Exact(a, v, 64, '@')
		got := ReadExact(a, s, 0, len(s), '@', 64)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "%q", s)
	}
}

func TestReadPadded(t *testing.T) {
	// Left padding from the length-limited decimal mode is lossless and
	// reads back; truncation is not and need not.
	s := Decimal(alphabet.Decimal, 3.14, 64, -1, 6)
	require.Equal(t, "  3.14", s)
	require.Equal(t, 3.14, Read(alphabet.Decimal, s, 0, len(s), 'E', 64))

	s = Decimal(alphabet.Decimal, -2.5, 64, -1, 6)
	require.Equal(t, "  -2.5", s)
	require.Equal(t, -2.5, Read(alphabet.Decimal, s, 0, len(s), 'E', 64))

	// Padding alone is not a value.
	require.Equal(t, 0.0, Read(alphabet.Decimal, "   ", 0, 3, 'E', 64))
}

func TestReadExactRoundTrip(t *testing.T) {
	vals := []float64{
		0, math.Copysign(0, -1), 1, -1, 0.1, -0.1, 1.0 / 3.0,
		math.Pi, math.E, 123456.0, 1234567.0, 1e-30, -1e30,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}

	alphabets := []*alphabet.Alphabet{
		alphabet.Binary,
		alphabet.Decimal,
		alphabet.Hex,
		alphabet.Base36,
		alphabet.Base64,
		alphabet.URISafe,
	}

	for _, a := range alphabets {
		for _, v := range vals {
			s := Exact(a, v, 64, '@')
			got := ReadExact(a, s, 0, len(s), '@', 64)

			if math.IsNaN(v) {
				require.True(t, math.IsNaN(got), "%q", s)
				continue
			}
			require.Equal(t, math.Float64bits(v), math.Float64bits(got), "%q radix %d", s, a.Radix())
		}
	}
}

func TestReadModesRoundTrip(t *testing.T) {
	vals := []float64{
		0, 1, -1, 0.1, 2.5, -2.5, math.Pi, 1e-7, 6.02214076e23,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
	}

	for _, v := range vals {
		for _, s := range []string{
			General(alphabet.Decimal, v, 64, 'E'),
			Scientific(alphabet.Decimal, v, 64, 'E'),
			Friendly(alphabet.Decimal, v, 64, 'E'),
		} {
			got := Read(alphabet.Decimal, s, 0, len(s), 'E', 64)
			require.Equal(t, math.Float64bits(v), math.Float64bits(got), "%q", s)
		}
	}
}

func TestReadFloat32RoundTrip(t *testing.T) {
	vals := []float32{
		0, 1, -1, 0.1, math.MaxFloat32, math.SmallestNonzeroFloat32, 1.5e-40,
	}

	for _, v := range vals {
		s := General(alphabet.Decimal, float64(v), 32, 'E')
		got := float32(Read(alphabet.Decimal, s, 0, len(s), 'E', 32))
		require.Equal(t, math.Float32bits(v), math.Float32bits(got), "%q", s)
	}
}
