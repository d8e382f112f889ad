package b2histogram

import "strconv"

// Bucket holds the count of observations between Begin and End, both
// inclusive.
//
// A Bucket is a snapshot: it does not change when more observations are
// recorded in the Histogram it came from.
type Bucket struct {
	// Begin is the smallest value covered by the bucket.
	Begin uint64

	// End is the largest value covered by the bucket.
	End uint64

	// Count is the number of observations recorded in the bucket.
	Count uint64
}

// Contains reports whether v lies within the bucket's range.
func (b Bucket) Contains(v uint64) bool {
	return b.Begin <= v && v <= b.End
}

// String returns b formatted as "[begin, end]: count".
func (b Bucket) String() string {
	buf := make([]byte, 0, 64)
	buf = append(buf, '[')
	buf = strconv.AppendUint(buf, b.Begin, 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendUint(buf, b.End, 10)
	buf = append(buf, "]: "...)
	buf = strconv.AppendUint(buf, b.Count, 10)
	return string(buf)
}
