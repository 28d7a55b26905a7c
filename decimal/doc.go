// Package decimal converts IEEE-754 floating point values to and from
// decimal text with the shortest round-trip guarantee.
//
// Every mode is built on one correctly-rounded decimal expansion of the bit
// pattern: the unique shortest digit sequence that parses back to exactly
// the original value, rounded half-to-even at the boundary of the shortest
// representable interval. Denormals need no special casing here; the
// expansion treats them with their effective exponent and no implicit
// leading bit. The expansion is restated as the intermediate form
// (sign, digits, decimal exponent), which exists only for the duration of
// one call — there is no shared scratch buffer, so concurrent callers never
// cross-talk.
//
// Modes
//
// Five presentations of the same digits:
//
//  | Mode       | Notation                       | Digits   |
//  |------------|--------------------------------|----------|
//  | General    | plain inside [-3, 7), else sci | ASCII    |
//  | Scientific | always d.dddE±exp              | ASCII    |
//  | Decimal    | always plain                   | ASCII    |
//  | Friendly   | plain inside [-10, 10)         | ASCII    |
//  | Exact      | as General                     | alphabet |
//
// The window bounds apply to the count of digits left of the decimal point,
// so 1234567.0 (seven digits) switches general notation to "1.234567E6"
// while 123456.0 stays "123456.0". A single-digit mantissa always gains a
// ".0" so that at least two significant characters appear.
//
// Decimal mode optionally fixes the fractional digit count (rounding and
// zero-padding to exactly that many digits) and optionally caps the total
// length, truncating or left-padding with the alphabet's padding character.
//
// Exact mode writes its mantissa digit characters through the alphabet's
// first ten digits, which is what makes scrambled alphabets an effective
// obfuscation for persisted floats; the point, exponent marker, and
// exponent digits stay ASCII, and alphabets narrower than ten digits fall
// back to ASCII entirely. NaN formats as "NaN", the infinities as
// "Infinity" with the alphabet's sign when negative, and negative zero
// keeps its sign.
//
// The readers are lenient in the same way the integer parser is: any
// malformed input decodes to 0 rather than an error. That silently masks
// corruption; strict callers must re-encode and compare.
package decimal
