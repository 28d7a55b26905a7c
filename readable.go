package base

import (
	"fmt"
	"strconv"
)

// Readable literal mode: text meant to be pasted into source code, with
// language-style suffixes and quoting. It is not an encoding — nothing here
// round-trips through this module's readers.

// ReadableInt64 returns v as a source literal with the L suffix.
func ReadableInt64(v int64) string {
	return strconv.FormatInt(v, 10) + "L"
}

// ReadableFloat32 returns the shortest digits of v with the f suffix.
func ReadableFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
}

// ReadableFloat64 returns the shortest digits of v.
func ReadableFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadableChar returns c as a single-quoted character literal, escaping the
// quote, backslash, common control characters, and everything non-printable
// as \uXXXX.
func ReadableChar(c uint16) string {
	switch c {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case 0:
		return `'\0'`
	}

	if c >= 0x20 && c < 0x7f {
		return "'" + string(rune(c)) + "'"
	}

	return fmt.Sprintf(`'\u%04X'`, c)
}
