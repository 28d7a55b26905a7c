package base

import (
	"github.com/calebcase/base/decimal"
)

// SignedFloat64 returns the Exact rendering of v: the shortest decimal
// string that parses back to the same bit pattern, with mantissa digit
// characters drawn from the alphabet. ReadFloat64Exact is its inverse.
func (b Base) SignedFloat64(v float64) string {
	return decimal.Exact(b.Alpha, v, 64, b.ExpMarker)
}

// AppendSignedFloat64 appends the Exact rendering of v to dst.
func (b Base) AppendSignedFloat64(dst []byte, v float64) []byte {
	return decimal.AppendExact(dst, b.Alpha, v, 64, b.ExpMarker)
}

// SignedFloat32 is SignedFloat64 for single precision.
func (b Base) SignedFloat32(v float32) string {
	return decimal.Exact(b.Alpha, float64(v), 32, b.ExpMarker)
}

// AppendSignedFloat32 appends the Exact rendering of v to dst.
func (b Base) AppendSignedFloat32(dst []byte, v float32) []byte {
	return decimal.AppendExact(dst, b.Alpha, float64(v), 32, b.ExpMarker)
}

// General64 renders v with plain notation inside the general window and
// scientific notation outside it, using ASCII mantissa digits.
func (b Base) General64(v float64) string {
	return decimal.General(b.Alpha, v, 64, b.ExpMarker)
}

// AppendGeneral64 appends the general rendering of v to dst.
func (b Base) AppendGeneral64(dst []byte, v float64) []byte {
	return decimal.AppendGeneral(dst, b.Alpha, v, 64, b.ExpMarker)
}

// General32 is General64 for single precision.
func (b Base) General32(v float32) string {
	return decimal.General(b.Alpha, float64(v), 32, b.ExpMarker)
}

// AppendGeneral32 appends the general rendering of v to dst.
func (b Base) AppendGeneral32(dst []byte, v float32) []byte {
	return decimal.AppendGeneral(dst, b.Alpha, float64(v), 32, b.ExpMarker)
}

// Scientific64 always renders v in d.dddE±exp form.
func (b Base) Scientific64(v float64) string {
	return decimal.Scientific(b.Alpha, v, 64, b.ExpMarker)
}

// AppendScientific64 appends the scientific rendering of v to dst.
func (b Base) AppendScientific64(dst []byte, v float64) []byte {
	return decimal.AppendScientific(dst, b.Alpha, v, 64, b.ExpMarker)
}

// Scientific32 is Scientific64 for single precision.
func (b Base) Scientific32(v float32) string {
	return decimal.Scientific(b.Alpha, float64(v), 32, b.ExpMarker)
}

// AppendScientific32 appends the scientific rendering of v to dst.
func (b Base) AppendScientific32(dst []byte, v float32) []byte {
	return decimal.AppendScientific(dst, b.Alpha, float64(v), 32, b.ExpMarker)
}

// Friendly64 is General64 with the wider friendly window, for output meant
// to be read by people.
func (b Base) Friendly64(v float64) string {
	return decimal.Friendly(b.Alpha, v, 64, b.ExpMarker)
}

// AppendFriendly64 appends the friendly rendering of v to dst.
func (b Base) AppendFriendly64(dst []byte, v float64) []byte {
	return decimal.AppendFriendly(dst, b.Alpha, v, 64, b.ExpMarker)
}

// Friendly32 is Friendly64 for single precision.
func (b Base) Friendly32(v float32) string {
	return decimal.Friendly(b.Alpha, float64(v), 32, b.ExpMarker)
}

// AppendFriendly32 appends the friendly rendering of v to dst.
func (b Base) AppendFriendly32(dst []byte, v float32) []byte {
	return decimal.AppendFriendly(dst, b.Alpha, float64(v), 32, b.ExpMarker)
}

// Decimal64 renders v in plain positional notation, never scientific. A
// non-negative precision fixes the fractional digit count exactly; a
// negative precision keeps the shortest digits.
func (b Base) Decimal64(v float64, precision int) string {
	return decimal.Decimal(b.Alpha, v, 64, precision, 0)
}

// AppendDecimal64 appends the plain rendering of v to dst.
func (b Base) AppendDecimal64(dst []byte, v float64, precision int) []byte {
	return decimal.AppendDecimal(dst, b.Alpha, v, 64, precision, 0)
}

// Decimal32 is Decimal64 for single precision.
func (b Base) Decimal32(v float32, precision int) string {
	return decimal.Decimal(b.Alpha, float64(v), 32, precision, 0)
}

// AppendDecimal32 appends the plain rendering of v to dst.
func (b Base) AppendDecimal32(dst []byte, v float32, precision int) []byte {
	return decimal.AppendDecimal(dst, b.Alpha, float64(v), 32, precision, 0)
}

// DecimalLimited64 is Decimal64 with a hard cap on the output length: text
// longer than limit is truncated and shorter text is left-padded with the
// alphabet's padding character to exactly limit.
func (b Base) DecimalLimited64(v float64, precision, limit int) string {
	return decimal.Decimal(b.Alpha, v, 64, precision, limit)
}

// DecimalLimited32 is DecimalLimited64 for single precision.
func (b Base) DecimalLimited32(v float32, precision, limit int) string {
	return decimal.Decimal(b.Alpha, float64(v), 32, precision, limit)
}

// ReadFloat64 leniently decodes any ASCII-digit mode output or bare decimal
// literal to the nearest float64; malformed input yields 0.
func (b Base) ReadFloat64(s string) float64 {
	return decimal.Read(b.Alpha, s, 0, len(s), b.ExpMarker, 64)
}

// ReadFloat64Range is ReadFloat64 over s[start:end).
func (b Base) ReadFloat64Range(s string, start, end int) float64 {
	return decimal.Read(b.Alpha, s, start, end, b.ExpMarker, 64)
}

// ReadFloat32 is ReadFloat64 for single precision.
func (b Base) ReadFloat32(s string) float32 {
	return float32(decimal.Read(b.Alpha, s, 0, len(s), b.ExpMarker, 32))
}

// ReadFloat32Range is ReadFloat32 over s[start:end).
func (b Base) ReadFloat32Range(s string, start, end int) float32 {
	return float32(decimal.Read(b.Alpha, s, start, end, b.ExpMarker, 32))
}

// ReadFloat64Exact decodes Exact-mode output, translating mantissa digit
// characters back through the alphabet; malformed input yields 0.
func (b Base) ReadFloat64Exact(s string) float64 {
	return decimal.ReadExact(b.Alpha, s, 0, len(s), b.ExpMarker, 64)
}

// ReadFloat64ExactRange is ReadFloat64Exact over s[start:end).
func (b Base) ReadFloat64ExactRange(s string, start, end int) float64 {
	return decimal.ReadExact(b.Alpha, s, start, end, b.ExpMarker, 64)
}

// ReadFloat32Exact is ReadFloat64Exact for single precision.
func (b Base) ReadFloat32Exact(s string) float32 {
	return float32(decimal.ReadExact(b.Alpha, s, 0, len(s), b.ExpMarker, 32))
}

// ReadFloat32ExactRange is ReadFloat32Exact over s[start:end).
func (b Base) ReadFloat32ExactRange(s string, start, end int) float32 {
	return float32(decimal.ReadExact(b.Alpha, s, start, end, b.ExpMarker, 32))
}
