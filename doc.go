// Package base converts machine numbers to and from text under a
// configurable, possibly scrambled, digit alphabet.
//
// A Base value binds one alphabet to the whole codec surface:
//
//  - integer text for the 8, 16, 32, and 64 bit signed widths and the
//    16-bit char width, in a fixed-width unsigned form (bit-pattern
//    faithful) and a variable-width signed form;
//  - a lenient parser that never fails and decodes malformed text to 0;
//  - the shortest round-trip decimal formatter for float32 and float64
//    with general, scientific, decimal, friendly, and exact modes;
//  - delimited batch join and split over 1-D and 2-D arrays of every
//    width, irregular rows included.
//
// The standard bases cover the usual radixes:
//
//  base.Base16.Unsigned32(0x12345678) // "12345678"
//  base.Base16.Unsigned32(-1)         // "FFFFFFFF"
//  base.Base10.Signed32(-2147483648)  // "-2147483648"
//
// A scrambled base permutes the digit order and sign from a seeded random
// source, which makes persisted numbers annoying to tamper with while
// every round-trip law keeps holding:
//
//  rng := rand.New(rand.NewPCG(seed, seed))
//  b := base.Scrambled(rng)
//  b.ReadInt64(b.Signed64(score)) == score
//
// Parsing throughout the module is deliberately total: corrupted text
// decodes to zero values instead of raising errors, because these codecs
// are aimed at untrusted persisted data where corruption is routine. See
// the integer and decimal package documents for the exact formats.
package base
