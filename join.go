package base

import (
	"github.com/calebcase/base/batch"
	"github.com/calebcase/base/decimal"
	"github.com/calebcase/base/integer"
)

// Element codecs for the batch wrappers: integers travel in the signed
// variable-width form, floats in the Exact form, so batch text round-trips
// bit-exactly under any alphabet. Delimiters are the caller's choice and
// must not occur inside any encoded element.

func (b Base) appInt64(dst []byte, v int64) []byte {
	return integer.AppendSigned(dst, b.Alpha, v)
}

func (b Base) appInt32(dst []byte, v int32) []byte {
	return integer.AppendSigned(dst, b.Alpha, int64(v))
}

func (b Base) appInt16(dst []byte, v int16) []byte {
	return integer.AppendSigned(dst, b.Alpha, int64(v))
}

func (b Base) appInt8(dst []byte, v int8) []byte {
	return integer.AppendSigned(dst, b.Alpha, int64(v))
}

func (b Base) appChar(dst []byte, v uint16) []byte {
	return integer.AppendMagnitude(dst, b.Alpha, uint64(v))
}

func (b Base) appFloat64(dst []byte, v float64) []byte {
	return decimal.AppendExact(dst, b.Alpha, v, 64, b.ExpMarker)
}

func (b Base) appFloat32(dst []byte, v float32) []byte {
	return decimal.AppendExact(dst, b.Alpha, float64(v), 32, b.ExpMarker)
}

func (b Base) rdInt64(s string, start, end int) int64 {
	return integer.Read(b.Alpha, s, start, end, 64)
}

func (b Base) rdInt32(s string, start, end int) int32 {
	return int32(integer.Read(b.Alpha, s, start, end, 32))
}

func (b Base) rdInt16(s string, start, end int) int16 {
	return int16(integer.Read(b.Alpha, s, start, end, 16))
}

func (b Base) rdInt8(s string, start, end int) int8 {
	return int8(integer.Read(b.Alpha, s, start, end, 8))
}

func (b Base) rdChar(s string, start, end int) uint16 {
	return uint16(integer.ReadUint(b.Alpha, s, start, end, 16))
}

func (b Base) rdFloat64(s string, start, end int) float64 {
	return decimal.ReadExact(b.Alpha, s, start, end, b.ExpMarker, 64)
}

func (b Base) rdFloat32(s string, start, end int) float32 {
	return float32(decimal.ReadExact(b.Alpha, s, start, end, b.ExpMarker, 32))
}

// CountFields reports how many delim-separated fields lie in s[start:end)
// without allocating, for validating an expected element count before a
// split.
func (b Base) CountFields(s, delim string, start, end int) int {
	return batch.Count(s, delim, start, end)
}

// JoinInt64 joins vals with delim between elements.
func (b Base) JoinInt64(delim string, vals []int64) string {
	return string(batch.Join(nil, delim, vals, b.appInt64))
}

// AppendJoinInt64 appends the joined elements to dst.
func (b Base) AppendJoinInt64(dst []byte, delim string, vals []int64) []byte {
	return batch.Join(dst, delim, vals, b.appInt64)
}

// JoinInt64Range joins vals[start : start+count], clamped to bounds.
func (b Base) JoinInt64Range(delim string, vals []int64, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appInt64))
}

// SplitInt64 decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitInt64(s, delim string) []int64 {
	return batch.Split(s, delim, 0, len(s), b.rdInt64)
}

// SplitInt64Range is SplitInt64 over s[start:end).
func (b Base) SplitInt64Range(s, delim string, start, end int) []int64 {
	return batch.Split(s, delim, start, end, b.rdInt64)
}

// JoinInt64Grid joins a 2-D array, wrapping each row in group.
func (b Base) JoinInt64Grid(delim string, group byte, rows [][]int64) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appInt64))
}

// SplitInt64Grid inverts JoinInt64Grid; rows may have different lengths.
func (b Base) SplitInt64Grid(s, delim string, group byte) [][]int64 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdInt64)
}

// JoinInt32 joins vals with delim between elements.
func (b Base) JoinInt32(delim string, vals []int32) string {
	return string(batch.Join(nil, delim, vals, b.appInt32))
}

// AppendJoinInt32 appends the joined elements to dst.
func (b Base) AppendJoinInt32(dst []byte, delim string, vals []int32) []byte {
	return batch.Join(dst, delim, vals, b.appInt32)
}

// JoinInt32Range joins vals[start : start+count], clamped to bounds.
func (b Base) JoinInt32Range(delim string, vals []int32, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appInt32))
}

// SplitInt32 decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitInt32(s, delim string) []int32 {
	return batch.Split(s, delim, 0, len(s), b.rdInt32)
}

// SplitInt32Range is SplitInt32 over s[start:end).
func (b Base) SplitInt32Range(s, delim string, start, end int) []int32 {
	return batch.Split(s, delim, start, end, b.rdInt32)
}

// JoinInt32Grid joins a 2-D array, wrapping each row in group.
func (b Base) JoinInt32Grid(delim string, group byte, rows [][]int32) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appInt32))
}

// SplitInt32Grid inverts JoinInt32Grid; rows may have different lengths.
func (b Base) SplitInt32Grid(s, delim string, group byte) [][]int32 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdInt32)
}

// JoinInt16 joins vals with delim between elements.
func (b Base) JoinInt16(delim string, vals []int16) string {
	return string(batch.Join(nil, delim, vals, b.appInt16))
}

// AppendJoinInt16 appends the joined elements to dst.
func (b Base) AppendJoinInt16(dst []byte, delim string, vals []int16) []byte {
	return batch.Join(dst, delim, vals, b.appInt16)
}

// JoinInt16Range joins vals[start : start+count], clamped to bounds.
func (b Base) JoinInt16Range(delim string, vals []int16, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appInt16))
}

// SplitInt16 decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitInt16(s, delim string) []int16 {
	return batch.Split(s, delim, 0, len(s), b.rdInt16)
}

// SplitInt16Range is SplitInt16 over s[start:end).
func (b Base) SplitInt16Range(s, delim string, start, end int) []int16 {
	return batch.Split(s, delim, start, end, b.rdInt16)
}

// JoinInt16Grid joins a 2-D array, wrapping each row in group.
func (b Base) JoinInt16Grid(delim string, group byte, rows [][]int16) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appInt16))
}

// SplitInt16Grid inverts JoinInt16Grid; rows may have different lengths.
func (b Base) SplitInt16Grid(s, delim string, group byte) [][]int16 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdInt16)
}

// JoinInt8 joins vals with delim between elements.
func (b Base) JoinInt8(delim string, vals []int8) string {
	return string(batch.Join(nil, delim, vals, b.appInt8))
}

// AppendJoinInt8 appends the joined elements to dst.
func (b Base) AppendJoinInt8(dst []byte, delim string, vals []int8) []byte {
	return batch.Join(dst, delim, vals, b.appInt8)
}

// JoinInt8Range joins vals[start : start+count], clamped to bounds.
func (b Base) JoinInt8Range(delim string, vals []int8, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appInt8))
}

// SplitInt8 decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitInt8(s, delim string) []int8 {
	return batch.Split(s, delim, 0, len(s), b.rdInt8)
}

// SplitInt8Range is SplitInt8 over s[start:end).
func (b Base) SplitInt8Range(s, delim string, start, end int) []int8 {
	return batch.Split(s, delim, start, end, b.rdInt8)
}

// JoinInt8Grid joins a 2-D array, wrapping each row in group.
func (b Base) JoinInt8Grid(delim string, group byte, rows [][]int8) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appInt8))
}

// SplitInt8Grid inverts JoinInt8Grid; rows may have different lengths.
func (b Base) SplitInt8Grid(s, delim string, group byte) [][]int8 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdInt8)
}

// JoinChar joins vals with delim between elements.
func (b Base) JoinChar(delim string, vals []uint16) string {
	return string(batch.Join(nil, delim, vals, b.appChar))
}

// AppendJoinChar appends the joined elements to dst.
func (b Base) AppendJoinChar(dst []byte, delim string, vals []uint16) []byte {
	return batch.Join(dst, delim, vals, b.appChar)
}

// JoinCharRange joins vals[start : start+count], clamped to bounds.
func (b Base) JoinCharRange(delim string, vals []uint16, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appChar))
}

// SplitChar decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitChar(s, delim string) []uint16 {
	return batch.Split(s, delim, 0, len(s), b.rdChar)
}

// SplitCharRange is SplitChar over s[start:end).
func (b Base) SplitCharRange(s, delim string, start, end int) []uint16 {
	return batch.Split(s, delim, start, end, b.rdChar)
}

// JoinCharGrid joins a 2-D array, wrapping each row in group.
func (b Base) JoinCharGrid(delim string, group byte, rows [][]uint16) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appChar))
}

// SplitCharGrid inverts JoinCharGrid; rows may have different lengths.
func (b Base) SplitCharGrid(s, delim string, group byte) [][]uint16 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdChar)
}

// JoinFloat64 joins vals in the Exact form with delim between elements.
func (b Base) JoinFloat64(delim string, vals []float64) string {
	return string(batch.Join(nil, delim, vals, b.appFloat64))
}

// AppendJoinFloat64 appends the joined elements to dst.
func (b Base) AppendJoinFloat64(dst []byte, delim string, vals []float64) []byte {
	return batch.Join(dst, delim, vals, b.appFloat64)
}

// JoinFloat64Range joins vals[start : start+count], clamped to bounds.
func (b Base) JoinFloat64Range(delim string, vals []float64, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appFloat64))
}

// SplitFloat64 decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitFloat64(s, delim string) []float64 {
	return batch.Split(s, delim, 0, len(s), b.rdFloat64)
}

// SplitFloat64Range is SplitFloat64 over s[start:end).
func (b Base) SplitFloat64Range(s, delim string, start, end int) []float64 {
	return batch.Split(s, delim, start, end, b.rdFloat64)
}

// JoinFloat64Grid joins a 2-D array, wrapping each row in group.
func (b Base) JoinFloat64Grid(delim string, group byte, rows [][]float64) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appFloat64))
}

// SplitFloat64Grid inverts JoinFloat64Grid; rows may have different
// lengths.
func (b Base) SplitFloat64Grid(s, delim string, group byte) [][]float64 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdFloat64)
}

// JoinFloat32 joins vals in the Exact form with delim between elements.
func (b Base) JoinFloat32(delim string, vals []float32) string {
	return string(batch.Join(nil, delim, vals, b.appFloat32))
}

// AppendJoinFloat32 appends the joined elements to dst.
func (b Base) AppendJoinFloat32(dst []byte, delim string, vals []float32) []byte {
	return batch.Join(dst, delim, vals, b.appFloat32)
}

// JoinFloat32Range joins vals[start : start+count], clamped to bounds.
func (b Base) JoinFloat32Range(delim string, vals []float32, start, count int) string {
	return string(batch.JoinRange(nil, delim, vals, start, count, b.appFloat32))
}

// SplitFloat32 decodes the delim-separated fields of s; malformed fields
// decode to 0 and processing continues.
func (b Base) SplitFloat32(s, delim string) []float32 {
	return batch.Split(s, delim, 0, len(s), b.rdFloat32)
}

// SplitFloat32Range is SplitFloat32 over s[start:end).
func (b Base) SplitFloat32Range(s, delim string, start, end int) []float32 {
	return batch.Split(s, delim, start, end, b.rdFloat32)
}

// JoinFloat32Grid joins a 2-D array, wrapping each row in group.
func (b Base) JoinFloat32Grid(delim string, group byte, rows [][]float32) string {
	return string(batch.Join2D(nil, delim, group, rows, b.appFloat32))
}

// SplitFloat32Grid inverts JoinFloat32Grid; rows may have different
// lengths.
func (b Base) SplitFloat32Grid(s, delim string, group byte) [][]float32 {
	return batch.Split2D(s, delim, group, 0, len(s), b.rdFloat32)
}
