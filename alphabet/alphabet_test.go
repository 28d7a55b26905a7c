package alphabet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInvalid(t *testing.T) {
	type TC struct {
		name     string
		digits   string
		radix    int
		foldCase bool
		negative byte
		padding  byte
	}

	tcs := []TC{
		{
			name:     "radix too small",
			digits:   "01",
			radix:    1,
			negative: '-',
			padding:  ' ',
		},
		{
			name:     "radix above digit count",
			digits:   "01",
			radix:    3,
			negative: '-',
			padding:  ' ',
		},
		{
			name:     "duplicate digit",
			digits:   "011",
			radix:    3,
			negative: '-',
			padding:  ' ',
		},
		{
			name:     "case-folded duplicate digit",
			digits:   "Aa",
			radix:    2,
			foldCase: true,
			negative: '-',
			padding:  ' ',
		},
		{
			name:     "non-printable digit",
			digits:   "0 ",
			radix:    2,
			negative: '-',
			padding:  '#',
		},
		{
			name:     "point as digit",
			digits:   "0.",
			radix:    2,
			negative: '-',
			padding:  ' ',
		},
		{
			name:     "sign collides with digit",
			digits:   "01",
			radix:    2,
			negative: '0',
			padding:  ' ',
		},
		{
			name:     "sign is exponent marker",
			digits:   "01",
			radix:    2,
			negative: 'E',
			padding:  ' ',
		},
		{
			name:     "sign is plus",
			digits:   "01",
			radix:    2,
			negative: '+',
			padding:  ' ',
		},
		{
			name:     "padding collides with digit",
			digits:   "01",
			radix:    2,
			negative: '-',
			padding:  '1',
		},
		{
			name:     "padding equals sign",
			digits:   "01",
			radix:    2,
			negative: '-',
			padding:  '-',
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a, err := New(tc.digits, tc.radix, tc.foldCase, tc.negative, tc.padding)
			require.Error(t, err)
			require.Nil(t, a)
		})
	}
}

func TestNewValid(t *testing.T) {
	// Case-sensitive alphabets may hold both cases as distinct digits.
	a, err := New("Aa", 2, false, '-', ' ')
	require.NoError(t, err)
	require.Equal(t, 0, a.Value('A'))
	require.Equal(t, 1, a.Value('a'))
}

func TestValueFolding(t *testing.T) {
	require.Equal(t, 10, Hex.Value('A'))
	require.Equal(t, 10, Hex.Value('a'))
	require.Equal(t, 35, Base36.Value('z'))
	require.Equal(t, -1, Hex.Value('G'))
	require.Equal(t, -1, Hex.Value('-'))
	require.Equal(t, -1, Hex.Value(0xFF))

	// Base64 is case sensitive.
	require.Equal(t, 0, Base64.Value('A'))
	require.Equal(t, 26, Base64.Value('a'))

	// Encoding always emits the canonical case.
	require.Equal(t, byte('F'), Hex.Digit(15))
}

func TestFixedLen(t *testing.T) {
	type TC struct {
		name string
		a    *Alphabet
		bits int
		want int
	}

	tcs := []TC{
		{"binary 8", Binary, 8, 8},
		{"binary 64", Binary, 64, 64},
		{"octal 8", Octal, 8, 3},
		{"decimal 16", Decimal, 16, 5},
		{"decimal 32", Decimal, 32, 10},
		{"decimal 64", Decimal, 64, 20},
		{"hex 16", Hex, 16, 4},
		{"hex 32", Hex, 32, 8},
		{"hex 64", Hex, 64, 16},
		{"base36 16", Base36, 16, 4},
		{"base36 32", Base36, 32, 7},
		{"base36 64", Base36, 64, 13},
		{"base64 32", Base64, 32, 6},
		{"base64 64", Base64, 64, 11},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.FixedLen(tc.bits))
		})
	}
}

func TestNamedAlphabets(t *testing.T) {
	for _, a := range []*Alphabet{Binary, Octal, Decimal, Hex, Base36, Base64, URISafe} {
		require.GreaterOrEqual(t, a.Radix(), MinRadix)
		require.LessOrEqual(t, a.Radix(), MaxRadix)
		require.Equal(t, -1, a.Value(a.Negative()))
		require.Equal(t, -1, a.Value(a.Padding()))
		require.Len(t, a.Digits(), a.Radix())
	}
}
