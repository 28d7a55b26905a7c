// Package batch joins arrays of numbers into delimited text and splits
// delimited text back into arrays.
//
// The cores are generic over the element type; the root package binds them
// to every primitive width with the integer and decimal codecs. Join emits
// the delimiter strictly between elements, Split decodes each field with a
// lenient reader so one corrupted field costs one zero element rather than
// the whole batch, and Count pre-validates an expected field count without
// allocating.
//
// The 2-D forms wrap each row in a group character and separate rows with
// the same delimiter, so irregular (non-rectangular) arrays round-trip:
//
//  <g>1 2 3<g> <g><g> <g>4 5<g>
//
// is three rows of lengths 3, 0, and 2 joined with " " and group '<g>'.
package batch
