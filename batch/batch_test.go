package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// The cores are exercised here with a pass-through string codec; the typed
// wrappers in the root package cover the numeric codecs.

func appString(dst []byte, v string) []byte {
	return append(dst, v...)
}

func readString(s string, start, end int) string {
	return s[start:end]
}

func TestJoin(t *testing.T) {
	type TC struct {
		name  string
		delim string
		vals  []string
		want  string
	}

	tcs := []TC{
		{"empty", " ", nil, ""},
		{"single", " ", []string{"a"}, "a"},
		{"spaces", " ", []string{"a", "b", "c"}, "a b c"},
		{"multichar delim", ", ", []string{"a", "b"}, "a, b"},
		{"empty fields", ",", []string{"", "", ""}, ",,"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, string(Join(nil, tc.delim, tc.vals, appString)))
		})
	}
}

func TestJoinRange(t *testing.T) {
	vals := []string{"a", "b", "c", "d"}

	require.Equal(t, "b c", string(JoinRange(nil, " ", vals, 1, 2, appString)))
	require.Equal(t, "c d", string(JoinRange(nil, " ", vals, 2, 99, appString)))
	require.Equal(t, "a b c d", string(JoinRange(nil, " ", vals, -3, -1, appString)))
	require.Equal(t, "", string(JoinRange(nil, " ", vals, 99, 2, appString)))
	require.Equal(t, "", string(JoinRange(nil, " ", vals, 1, 0, appString)))
}

func TestCount(t *testing.T) {
	type TC struct {
		name       string
		s          string
		delim      string
		start, end int
		want       int
	}

	tcs := []TC{
		{"empty", "", " ", 0, 0, 0},
		{"single", "a", " ", 0, 1, 1},
		{"three", "a b c", " ", 0, 5, 3},
		{"trailing delim", "a b ", " ", 0, 4, 3},
		{"sub range", "a b c", " ", 2, 5, 2},
		{"clamped", "a b c", " ", -10, 100, 3},
		{"inverted range", "a b c", " ", 4, 2, 0},
		{"multichar delim", "a, b, c", ", ", 0, 7, 3},
		{"empty delim", "abc", "", 0, 3, 1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, Count(tc.s, tc.delim, tc.start, tc.end))
		})
	}
}

func TestSplit(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, Split("a b c", " ", 0, 5, readString))
	require.Equal(t, []string{"b", "c"}, Split("a b c", " ", 2, 5, readString))
	require.Equal(t, []string{}, Split("", " ", 0, 0, readString))
	require.Equal(t, []string{"", "", ""}, Split(",,", ",", 0, 2, readString))
	require.Equal(t, []string{"abc"}, Split("abc", "", 0, 3, readString))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	vals := []string{"x", "yy", "zzz"}
	joined := string(Join(nil, "|", vals, appString))

	require.Equal(t, len(vals), Count(joined, "|", 0, len(joined)))
	require.Equal(t, vals, Split(joined, "|", 0, len(joined), readString))
}

func TestJoin2D(t *testing.T) {
	rows := [][]string{{"a", "b"}, {}, {"c"}}

	joined := string(Join2D(nil, " ", '"', rows, appString))
	require.Equal(t, `"a b" "" "c"`, joined)

	require.Equal(t, [][]string{{"a", "b"}, {}, {"c"}},
		Split2D(joined, " ", '"', 0, len(joined), readString))
}

func TestSplit2DLenient(t *testing.T) {
	// Unterminated final row is dropped; stray text between rows is
	// skipped.
	require.Equal(t, [][]string{{"a"}},
		Split2D(`"a" junk "b`, " ", '"', 0, 11, readString))
	require.Equal(t, [][]string{},
		Split2D("no rows at all", " ", '"', 0, 14, readString))
}
