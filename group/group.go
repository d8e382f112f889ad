// Package group provides a set of named histograms that is safe for
// concurrent use.
package group

import (
	"sort"
	"sync"

	"github.com/int08h/b2histogram"
)

// Group holds one b2histogram.Histogram per key, guarding all of them
// with a single mutex.
//
// The zero value is an empty Group, ready to use.
type Group struct {
	mu         sync.Mutex
	histograms map[string]*b2histogram.Histogram
}

// Record records a single observation of v in the histogram for key,
// creating the histogram if necessary.
func (g *Group) Record(key string, v uint64) {
	g.RecordN(key, v, 1)
}

// RecordN records n observations of v in the histogram for key,
// creating the histogram if necessary.
func (g *Group) RecordN(key string, v, n uint64) {
	g.mu.Lock()
	g.get(key).RecordN(v, n)
	g.mu.Unlock()
}

// get returns the histogram for key. g.mu must be held.
func (g *Group) get(key string) *b2histogram.Histogram {
	h, ok := g.histograms[key]
	if !ok {
		if g.histograms == nil {
			g.histograms = make(map[string]*b2histogram.Histogram)
		}
		h = new(b2histogram.Histogram)
		g.histograms[key] = h
	}
	return h
}

// Snapshot returns a copy of the histogram for key, and whether or not
// the key exists. The copy may be read without further synchronization.
func (g *Group) Snapshot(key string) (b2histogram.Histogram, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h, ok := g.histograms[key]
	if !ok {
		return b2histogram.Histogram{}, false
	}
	return *h, true
}

// Keys returns the keys of g in sorted order.
func (g *Group) Keys() []string {
	g.mu.Lock()
	keys := make([]string, 0, len(g.histograms))
	for k := range g.histograms {
		keys = append(keys, k)
	}
	g.mu.Unlock()
	sort.Strings(keys)
	return keys
}

// Len returns the number of histograms in g.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.histograms)
}

// Reset removes all histograms from g.
func (g *Group) Reset() {
	g.mu.Lock()
	g.histograms = nil
	g.mu.Unlock()
}
