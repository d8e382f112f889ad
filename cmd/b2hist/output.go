package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"go.elastic.co/fastjson"

	"github.com/int08h/b2histogram"
	"github.com/int08h/b2histogram/group"
)

func writeReport(w io.Writer, opts options, g *group.Group) error {
	if opts.format == formatJSON {
		return writeJSON(w, opts, g)
	}
	if !opts.grouped {
		h, _ := g.Snapshot("")
		return writeHistogram(w, opts, &h)
	}
	for i, key := range g.Keys() {
		h, _ := g.Snapshot(key)
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:\n", key); err != nil {
			return err
		}
		if err := writeHistogram(w, opts, &h); err != nil {
			return err
		}
	}
	return nil
}

func writeHistogram(w io.Writer, opts options, h *b2histogram.Histogram) error {
	if opts.format == formatDebug {
		return writeDebug(w, h, opts.all)
	}
	return writeText(w, h, opts.all)
}

func writeText(w io.Writer, h *b2histogram.Histogram, all bool) error {
	if _, err := fmt.Fprintf(w, "%20s %20s %20s\n", "begin", "end", "count"); err != nil {
		return err
	}
	for it := h.Iter(); it.Next(); {
		b := it.Bucket()
		if b.Count == 0 && !all {
			continue
		}
		if _, err := fmt.Fprintf(w, "%20d %20d %20d\n", b.Begin, b.End, b.Count); err != nil {
			return err
		}
	}
	return nil
}

// debugBucket is the debug rendering of a bucket. Bucket holds the
// decimal String form; pretty renders uint64 fields in hex.
type debugBucket struct {
	Index  int
	Bucket string
}

func writeDebug(w io.Writer, h *b2histogram.Histogram, all bool) error {
	buckets := make([]debugBucket, 0, b2histogram.NumBuckets)
	for it := h.Iter(); it.Next(); {
		if b := it.Bucket(); b.Count > 0 || all {
			buckets = append(buckets, debugBucket{Index: it.Index(), Bucket: b.String()})
		}
	}
	_, err := pretty.Fprintf(w, "%# v\n", buckets)
	return err
}

func writeJSON(w io.Writer, opts options, g *group.Group) error {
	var jw fastjson.Writer
	if opts.grouped {
		if err := g.MarshalFastJSON(&jw); err != nil {
			return err
		}
	} else {
		h, _ := g.Snapshot("")
		if err := h.MarshalFastJSON(&jw); err != nil {
			return err
		}
	}
	jw.RawByte('\n')
	_, err := w.Write(jw.Bytes())
	return err
}
