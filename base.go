package base

import (
	"math/rand/v2"

	"github.com/calebcase/base/alphabet"
	"github.com/calebcase/base/decimal"
	"github.com/calebcase/base/integer"
)

// Base binds a digit alphabet to every codec operation in the module:
// integer text in signed and unsigned forms, the decimal formatter modes,
// and delimited batch join/split. A Base is a small immutable value; copy
// it freely and share it between goroutines.
type Base struct {
	// Alpha is the digit alphabet.
	Alpha *alphabet.Alphabet

	// ExpMarker is the exponent marker for scientific output. New picks
	// one that cannot be mistaken for a mantissa digit of the alphabet.
	ExpMarker byte
}

// New returns a Base over the given alphabet with a safe exponent marker.
func New(a *alphabet.Alphabet) Base {
	return Base{
		Alpha:     a,
		ExpMarker: markerFor(a),
	}
}

// markerCandidates are tried in order for the exponent marker. Thirteen
// candidates outnumber the ten mantissa digit characters plus the sign and
// padding, so one always survives.
const markerCandidates = "E@#;:&%?^~|}{"

// markerFor returns the first candidate that is neither one of the
// alphabet's first ten digits (those appear as Exact-mode mantissa
// characters) nor the sign or padding character.
func markerFor(a *alphabet.Alphabet) byte {
	for i := 0; i < len(markerCandidates); i++ {
		c := markerCandidates[i]
		if v := a.Value(c); v >= 0 && v < 10 {
			continue
		}
		if c == a.Negative() || c == a.Padding() {
			continue
		}

		return c
	}

	// Unreachable: the candidate set is larger than the exclusion set.
	return decimal.DefaultExpMarker
}

// The standard bases.
var (
	Base2   = New(alphabet.Binary)
	Base8   = New(alphabet.Octal)
	Base10  = New(alphabet.Decimal)
	Base16  = New(alphabet.Hex)
	Base36  = New(alphabet.Base36)
	Base64  = New(alphabet.Base64)
	URISafe = New(alphabet.URISafe)
)

// Scrambled returns a Base over a scrambled Base36 alphabet drawn from the
// random source. A seeded source reproduces the same base, which is what
// lets obfuscated text written earlier be read back.
func Scrambled(rng *rand.Rand) Base {
	return ScrambledFrom(rng, alphabet.Base36)
}

// ScrambledFrom scrambles an arbitrary source alphabet.
func ScrambledFrom(rng *rand.Rand, a *alphabet.Alphabet) Base {
	return New(alphabet.Scramble(rng, a))
}

// Unsigned64 returns the fixed-width unsigned encoding of v's bit pattern.
func (b Base) Unsigned64(v int64) string {
	return integer.Unsigned(b.Alpha, uint64(v), 64)
}

// AppendUnsigned64 appends the fixed-width unsigned encoding of v to dst.
func (b Base) AppendUnsigned64(dst []byte, v int64) []byte {
	return integer.AppendUnsigned(dst, b.Alpha, uint64(v), 64)
}

// Signed64 returns the variable-width signed encoding of v.
func (b Base) Signed64(v int64) string {
	return integer.Signed(b.Alpha, v)
}

// AppendSigned64 appends the variable-width signed encoding of v to dst.
func (b Base) AppendSigned64(dst []byte, v int64) []byte {
	return integer.AppendSigned(dst, b.Alpha, v)
}

// ReadInt64 leniently decodes s in either form; malformed input yields 0.
func (b Base) ReadInt64(s string) int64 {
	return integer.Read(b.Alpha, s, 0, len(s), 64)
}

// ReadInt64Range is ReadInt64 over s[start:end).
func (b Base) ReadInt64Range(s string, start, end int) int64 {
	return integer.Read(b.Alpha, s, start, end, 64)
}

// Unsigned32 returns the fixed-width unsigned encoding of v's bit pattern.
func (b Base) Unsigned32(v int32) string {
	return integer.Unsigned(b.Alpha, uint64(uint32(v)), 32)
}

// AppendUnsigned32 appends the fixed-width unsigned encoding of v to dst.
func (b Base) AppendUnsigned32(dst []byte, v int32) []byte {
	return integer.AppendUnsigned(dst, b.Alpha, uint64(uint32(v)), 32)
}

// Signed32 returns the variable-width signed encoding of v.
func (b Base) Signed32(v int32) string {
	return integer.Signed(b.Alpha, int64(v))
}

// AppendSigned32 appends the variable-width signed encoding of v to dst.
func (b Base) AppendSigned32(dst []byte, v int32) []byte {
	return integer.AppendSigned(dst, b.Alpha, int64(v))
}

// ReadInt32 leniently decodes s in either form; malformed input yields 0.
func (b Base) ReadInt32(s string) int32 {
	return int32(integer.Read(b.Alpha, s, 0, len(s), 32))
}

// ReadInt32Range is ReadInt32 over s[start:end).
func (b Base) ReadInt32Range(s string, start, end int) int32 {
	return int32(integer.Read(b.Alpha, s, start, end, 32))
}

// Unsigned16 returns the fixed-width unsigned encoding of v's bit pattern.
func (b Base) Unsigned16(v int16) string {
	return integer.Unsigned(b.Alpha, uint64(uint16(v)), 16)
}

// AppendUnsigned16 appends the fixed-width unsigned encoding of v to dst.
func (b Base) AppendUnsigned16(dst []byte, v int16) []byte {
	return integer.AppendUnsigned(dst, b.Alpha, uint64(uint16(v)), 16)
}

// Signed16 returns the variable-width signed encoding of v.
func (b Base) Signed16(v int16) string {
	return integer.Signed(b.Alpha, int64(v))
}

// AppendSigned16 appends the variable-width signed encoding of v to dst.
func (b Base) AppendSigned16(dst []byte, v int16) []byte {
	return integer.AppendSigned(dst, b.Alpha, int64(v))
}

// ReadInt16 leniently decodes s in either form; malformed input yields 0.
func (b Base) ReadInt16(s string) int16 {
	return int16(integer.Read(b.Alpha, s, 0, len(s), 16))
}

// ReadInt16Range is ReadInt16 over s[start:end).
func (b Base) ReadInt16Range(s string, start, end int) int16 {
	return int16(integer.Read(b.Alpha, s, start, end, 16))
}

// Unsigned8 returns the fixed-width unsigned encoding of v's bit pattern.
func (b Base) Unsigned8(v int8) string {
	return integer.Unsigned(b.Alpha, uint64(uint8(v)), 8)
}

// AppendUnsigned8 appends the fixed-width unsigned encoding of v to dst.
func (b Base) AppendUnsigned8(dst []byte, v int8) []byte {
	return integer.AppendUnsigned(dst, b.Alpha, uint64(uint8(v)), 8)
}

// Signed8 returns the variable-width signed encoding of v.
func (b Base) Signed8(v int8) string {
	return integer.Signed(b.Alpha, int64(v))
}

// AppendSigned8 appends the variable-width signed encoding of v to dst.
func (b Base) AppendSigned8(dst []byte, v int8) []byte {
	return integer.AppendSigned(dst, b.Alpha, int64(v))
}

// ReadInt8 leniently decodes s in either form; malformed input yields 0.
func (b Base) ReadInt8(s string) int8 {
	return int8(integer.Read(b.Alpha, s, 0, len(s), 8))
}

// ReadInt8Range is ReadInt8 over s[start:end).
func (b Base) ReadInt8Range(s string, start, end int) int8 {
	return int8(integer.Read(b.Alpha, s, start, end, 8))
}

// UnsignedChar returns the fixed-width encoding of the 16-bit char v.
func (b Base) UnsignedChar(v uint16) string {
	return integer.Unsigned(b.Alpha, uint64(v), 16)
}

// AppendUnsignedChar appends the fixed-width encoding of v to dst.
func (b Base) AppendUnsignedChar(dst []byte, v uint16) []byte {
	return integer.AppendUnsigned(dst, b.Alpha, uint64(v), 16)
}

// SignedChar returns the minimal-digit encoding of v. Chars have no
// negative values, so no sign ever appears.
func (b Base) SignedChar(v uint16) string {
	return integer.Magnitude(b.Alpha, uint64(v))
}

// AppendSignedChar appends the minimal-digit encoding of v to dst.
func (b Base) AppendSignedChar(dst []byte, v uint16) []byte {
	return integer.AppendMagnitude(dst, b.Alpha, uint64(v))
}

// ReadChar leniently decodes s as a 16-bit char; malformed input yields 0.
func (b Base) ReadChar(s string) uint16 {
	return uint16(integer.ReadUint(b.Alpha, s, 0, len(s), 16))
}

// ReadCharRange is ReadChar over s[start:end).
func (b Base) ReadCharRange(s string, start, end int) uint16 {
	return uint16(integer.ReadUint(b.Alpha, s, start, end, 16))
}
