// Package alphabet defines the digit alphabets that the rest of the module
// encodes numbers with.
//
// An Alphabet is an ordered set of unique printable ASCII digit characters.
// The position of a character in the set is its numeric value and the length
// of the set in use is the radix. The first character is the zero digit and
// is also used for left padding fixed-width output. Alongside the digits an
// Alphabet carries a negative sign character (never one of the digits) and a
// padding character for length-limited decimal output.
//
// Alphabet
//
// This table shows the standard alphabets provided by this package. All of
// them draw their digits from one of three master digit strings.
//
//  | Name    | Radix | Digits                 | Fold Case | Sign |
//  |---------|-------|------------------------|-----------|------|
//  | Binary  |     2 | 01                     | yes       | -    |
//  | Octal   |     8 | 01234567               | yes       | -    |
//  | Decimal |    10 | 0123456789             | yes       | -    |
//  | Hex     |    16 | 0123456789ABCDEF       | yes       | -    |
//  | Base36  |    36 | 0-9 A-Z                | yes       | -    |
//  | Base64  |    64 | A-Z a-z 0-9 + /        | no        | -    |
//  | URISafe |    64 | A-Z a-z 0-9 - _        | no        | !    |
//
// Fold-case alphabets accept either case of a letter when decoding and
// always emit the canonical case stored in the digit string when encoding.
//
// Scrambled alphabets permute the digit order and re-draw the sign character
// from a seeded random source. They satisfy exactly the same construction
// invariants as the standard alphabets, so every codec law holds for them,
// while the text they produce is meaningless to a reader who does not hold
// the permutation. This is obfuscation for casual tampering (mangling a
// persisted score), not cryptography.
//
// Alphabets are immutable after construction and safe to share between
// goroutines without synchronization.
package alphabet
