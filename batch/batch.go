package batch

import (
	"strings"
)

// clamp bounds start and end to [0, n].
func clamp(n, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}

	return start, end
}

// Join appends the elements of vals to dst with delim between elements
// only: no leading or trailing delimiter. app encodes one element.
func Join[T any](dst []byte, delim string, vals []T, app func([]byte, T) []byte) []byte {
	for i, v := range vals {
		if i > 0 {
			dst = append(dst, delim...)
		}
		dst = app(dst, v)
	}

	return dst
}

// JoinRange is Join over vals[start : start+count], clamped to the slice
// bounds. A negative count means everything from start on.
func JoinRange[T any](dst []byte, delim string, vals []T, start, count int, app func([]byte, T) []byte) []byte {
	if start < 0 {
		start = 0
	}
	if start > len(vals) {
		start = len(vals)
	}

	end := start + count
	if count < 0 || end > len(vals) {
		end = len(vals)
	}

	return Join(dst, delim, vals[start:end], app)
}

// Count reports how many delim-separated fields lie in s[start:end) without
// allocating. An empty range holds zero fields; a non-empty range holds one
// more field than it holds delimiters.
func Count(s, delim string, start, end int) int {
	start, end = clamp(len(s), start, end)
	if start >= end {
		return 0
	}
	if delim == "" {
		return 1
	}

	n := 1
	for i := start; ; {
		j := strings.Index(s[i:end], delim)
		if j < 0 {
			break
		}
		n++
		i += j + len(delim)
	}

	return n
}

// Split decodes the delim-separated fields of s[start:end). read decodes
// one field from its sub-range; a malformed field decodes to the zero value
// under the lenient readers, and processing continues with the remaining
// fields. An empty range yields an empty (non-nil) slice.
func Split[T any](s, delim string, start, end int, read func(s string, start, end int) T) []T {
	start, end = clamp(len(s), start, end)
	out := make([]T, 0, Count(s, delim, start, end))
	if start >= end {
		return out
	}
	if delim == "" {
		return append(out, read(s, start, end))
	}

	for i := start; ; {
		j := strings.Index(s[i:end], delim)
		if j < 0 {
			return append(out, read(s, i, end))
		}
		out = append(out, read(s, i, i+j))
		i += j + len(delim)
	}
}

// Join2D appends rows as group-wrapped fields separated by delim:
//
//  <group>elem elem ...<group><delim><group>...<group>
//
// Elements inside a row are joined with the same delim. Rows of different
// lengths, including empty rows, round-trip through Split2D. The group
// character must not occur in delim or in any encoded element.
func Join2D[T any](dst []byte, delim string, group byte, rows [][]T, app func([]byte, T) []byte) []byte {
	for i, row := range rows {
		if i > 0 {
			dst = append(dst, delim...)
		}
		dst = append(dst, group)
		dst = Join(dst, delim, row, app)
		dst = append(dst, group)
	}

	return dst
}

// Split2D inverts Join2D over s[start:end). Text outside group-wrapped rows
// is skipped leniently; an unterminated final row is dropped.
func Split2D[T any](s, delim string, group byte, start, end int, read func(s string, start, end int) T) [][]T {
	start, end = clamp(len(s), start, end)

	out := [][]T{}
	for i := start; i < end; {
		if s[i] != group {
			i++
			continue
		}

		j := strings.IndexByte(s[i+1:end], group)
		if j < 0 {
			break
		}

		out = append(out, Split(s, delim, i+1, i+1+j, read))
		i += j + 2
	}

	return out
}
