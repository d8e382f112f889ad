package b2histogram

import (
	"go.elastic.co/fastjson"
)

// MarshalFastJSON writes the JSON encoding of h to w.
//
// Only buckets with observations are written, in ascending order:
//
//	{"buckets":[{"begin":8,"end":15,"count":2}],"total":2}
func (h *Histogram) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"buckets":[`)
	first := true
	for it := h.Iter(); it.Next(); {
		b := it.Bucket()
		if b.Count == 0 {
			continue
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		if err := b.MarshalFastJSON(w); err != nil {
			return err
		}
	}
	w.RawString(`],"total":`)
	w.Uint64(h.Total())
	w.RawByte('}')
	return nil
}

// MarshalJSON returns the JSON encoding of h, as written by
// MarshalFastJSON.
func (h *Histogram) MarshalJSON() ([]byte, error) {
	var w fastjson.Writer
	if err := h.MarshalFastJSON(&w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalFastJSON writes the JSON encoding of b to w.
func (b Bucket) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"begin":`)
	w.Uint64(b.Begin)
	w.RawString(`,"end":`)
	w.Uint64(b.End)
	w.RawString(`,"count":`)
	w.Uint64(b.Count)
	w.RawByte('}')
	return nil
}

// MarshalJSON returns the JSON encoding of b.
func (b Bucket) MarshalJSON() ([]byte, error) {
	var w fastjson.Writer
	if err := b.MarshalFastJSON(&w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
