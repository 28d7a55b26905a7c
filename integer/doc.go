// Package integer encodes and decodes machine integers as text under a
// digit alphabet.
//
// Two textual forms exist per bit width:
//
//  | Form     | Length                  | Sign     | Padding          |
//  |----------|-------------------------|----------|------------------|
//  | unsigned | FixedLen(bits), fixed   | never    | zero digit, left |
//  | signed   | minimal digits          | optional | none             |
//
// The unsigned form treats the bit pattern of the width as a non-negative
// magnitude, so int32(-1) under the Hex alphabet is "FFFFFFFF" and every
// pattern, sign bit included, survives the round trip. The signed form is
// the usual optional-sign-plus-minimal-digits rendering; zero is the single
// zero digit in both forms (the unsigned form still pads to full width).
// The 16-bit char width has no negative values: its signed form is simply
// the minimal unsigned digits.
//
// Read is deliberately lenient. It is meant for untrusted or deliberately
// obfuscated persisted text (score files and the like), where corruption is
// routine and an error return per field would force error-driven control
// flow through every caller. Malformed input decodes to 0, never an error.
package integer
