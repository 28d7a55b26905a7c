package integer

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
		a    *alphabet.Alphabet
		s    string
		bits int
		want int64
	}

	tcs := []TC{
		{"empty", alphabet.Decimal, "", 32, 0},
		{"sign only", alphabet.Decimal, "-", 32, 0},
		{"double sign", alphabet.Decimal, "--1", 32, 0},
		{"inner sign", alphabet.Decimal, "1-1", 32, 0},
		{"garbage", alphabet.Decimal, "12x3", 32, 0},
		{"out of alphabet", alphabet.Binary, "012", 32, 0},
		{"whitespace", alphabet.Decimal, " 1", 32, 0},
		{"min int32", alphabet.Decimal, "-2147483648", 32, math.MinInt32},
		{"below min int32", alphabet.Decimal, "-2147483649", 32, 0},
		{"unsigned reinterpret", alphabet.Decimal, "4294967295", 32, -1},
		{"above unsigned max", alphabet.Decimal, "4294967296", 32, 0},
		{"wild overflow", alphabet.Decimal, "99999999999999999999999999", 64, 0},
		{"min int64", alphabet.Decimal, "-9223372036854775808", 64, math.MinInt64},
		{"min int8", alphabet.Decimal, "-128", 8, math.MinInt8},
		{"int8 bit pattern", alphabet.Decimal, "128", 8, -128},
		{"int8 overflow", alphabet.Decimal, "-129", 8, 0},
		{"int8 unsigned overflow", alphabet.Decimal, "256", 8, 0},
		{"fold case", alphabet.Hex, "ff", 32, 255},
		{"leading zeros", alphabet.Decimal, "0042", 32, 42},
		{"case mismatch strict", alphabet.Base64, "a", 32, 26},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, Read(tc.a, tc.s, 0, len(tc.s), tc.bits))
		})
	}
}

func TestReadRange(t *testing.T) {
	s := "x-42y"

	require.Equal(t, int64(-42), Read(alphabet.Decimal, s, 1, 4, 32))
	require.Equal(t, int64(4), Read(alphabet.Decimal, s, 2, 3, 32))

	// Bounds clamp to the string instead of panicking.
	require.Equal(t, int64(0), Read(alphabet.Decimal, s, -5, 100, 32))
	require.Equal(t, int64(42), Read(alphabet.Decimal, "42", -5, 100, 32))
	require.Equal(t, int64(0), Read(alphabet.Decimal, s, 4, 2, 32))
}

func TestReadUintLenient(t *testing.T) {
	require.Equal(t, uint64(65), ReadUint(alphabet.Decimal, "65", 0, 2, 16))
	require.Equal(t, uint64(0xFFFF), ReadUint(alphabet.Hex, "FFFF", 0, 4, 16))

	// Chars have no sign and no room above 16 bits.
	require.Equal(t, uint64(0), ReadUint(alphabet.Decimal, "-1", 0, 2, 16))
	require.Equal(t, uint64(0), ReadUint(alphabet.Decimal, "65536", 0, 5, 16))
}
