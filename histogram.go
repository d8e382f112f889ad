package b2histogram

import (
	"math"
	"math/bits"
)

// NumBuckets is the number of buckets in a Histogram: one for zero,
// plus one for each bit position of a uint64.
const NumBuckets = 65

// Histogram counts uint64 observations in power-of-2 sized buckets.
//
// The zero value is an empty histogram, ready to use.
type Histogram struct {
	counts [NumBuckets]uint64
}

// New returns an empty Histogram.
func New() Histogram {
	return Histogram{}
}

// IndexOf returns the index of the bucket covering v, in the range
// [0, NumBuckets).
func IndexOf(v uint64) int {
	return bits.Len64(v)
}

// Record records a single observation of v.
func (h *Histogram) Record(v uint64) {
	h.RecordN(v, 1)
}

// RecordN records n observations of v. The bucket count saturates at
// math.MaxUint64.
func (h *Histogram) RecordN(v, n uint64) {
	i := IndexOf(v)
	sum, carry := bits.Add64(h.counts[i], n, 0)
	if carry != 0 {
		sum = math.MaxUint64
	}
	h.counts[i] = sum
}

// Observations returns the number of observations recorded in the
// bucket covering v.
func (h *Histogram) Observations(v uint64) uint64 {
	return h.counts[IndexOf(v)]
}

// HasCounts reports whether the bucket covering v has any observations.
func (h *Histogram) HasCounts(v uint64) bool {
	return h.Observations(v) != 0
}

// BucketFor returns the bucket covering v.
//
// To retrieve only the count, use Observations.
func (h *Histogram) BucketFor(v uint64) Bucket {
	return h.BucketAt(IndexOf(v))
}

// BucketAt returns the bucket with index i. BucketAt panics if i is not
// in the range [0, NumBuckets).
func (h *Histogram) BucketAt(i int) Bucket {
	count := h.counts[i]
	if i == 0 {
		return Bucket{Count: count}
	}
	begin := uint64(1) << uint(i-1)
	end := uint64(math.MaxUint64)
	if i < NumBuckets-1 {
		end = begin<<1 - 1
	}
	return Bucket{Begin: begin, End: end, Count: count}
}

// NonzeroBuckets returns the number of buckets with one or more
// observations.
func (h *Histogram) NonzeroBuckets() int {
	var n int
	for _, c := range h.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all bucket counts, saturating at
// math.MaxUint64.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.counts {
		sum, carry := bits.Add64(total, c, 0)
		if carry != 0 {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}

// Reset discards all observations.
func (h *Histogram) Reset() {
	h.counts = [NumBuckets]uint64{}
}

// Iter returns an Iterator over all NumBuckets buckets of h, in
// ascending order. Empty buckets are included.
func (h *Histogram) Iter() Iterator {
	return Iterator{h: h, i: -1}
}

// Iterator walks the buckets of a Histogram. An Iterator is a plain
// value, and iterating allocates nothing.
//
// Each call to Bucket reads the current count, so the histogram should
// not be modified while it is being iterated.
type Iterator struct {
	h *Histogram
	i int
}

// Next advances the iterator to the next bucket, returning false once
// all buckets have been visited.
func (it *Iterator) Next() bool {
	if it.i >= NumBuckets-1 {
		it.i = NumBuckets
		return false
	}
	it.i++
	return true
}

// Index returns the index of the current bucket.
func (it *Iterator) Index() int {
	return it.i
}

// Bucket returns the current bucket. If Next has not been called, or
// has returned false, Bucket returns the zero Bucket.
func (it *Iterator) Bucket() Bucket {
	if it.h == nil || it.i < 0 || it.i >= NumBuckets {
		return Bucket{}
	}
	return it.h.BucketAt(it.i)
}
