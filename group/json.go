package group

import (
	"go.elastic.co/fastjson"
)

// MarshalFastJSON writes the JSON encoding of g to w: an object mapping
// each key, in sorted order, to the JSON encoding of its histogram.
func (g *Group) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawByte('{')
	first := true
	for _, key := range g.Keys() {
		h, ok := g.Snapshot(key)
		if !ok {
			// Removed by a concurrent Reset.
			continue
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		w.String(key)
		w.RawByte(':')
		if err := h.MarshalFastJSON(w); err != nil {
			return err
		}
	}
	w.RawByte('}')
	return nil
}
