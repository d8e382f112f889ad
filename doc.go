// Package b2histogram provides a fixed-size histogram of uint64 values
// with power-of-2 spaced buckets.
//
// A Histogram occupies 520 bytes (65 uint64 counters), holds no pointers,
// and never allocates. It may be declared on the stack or embedded directly
// in another struct:
//
//	var h b2histogram.Histogram
//	h.Record(0)
//	h.Record(11)
//	h.Record(11)
//	h.RecordN(300000, 6)
//
//	for it := h.Iter(); it.Next(); {
//		if b := it.Bucket(); b.Count > 0 {
//			fmt.Println(b)
//		}
//	}
//
// Bucket 0 holds observations of zero. Bucket i, for i >= 1, covers the
// closed range [2^(i-1), 2^i-1]; the top bucket, 64, covers
// [2^63, math.MaxUint64].
//
// Counts saturate at math.MaxUint64 rather than wrapping around.
//
// Histogram is not safe for concurrent use. Callers that share a Histogram
// between goroutines must synchronize access themselves; see package group.
package b2histogram
