package merge

import (
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// Pool is an insertion-ordered collection of entries keyed by canonical
// headword. Add never overwrites an existing key.
type Pool struct {
	keys    []string
	entries map[string]domain.LexicalEntry
}

// NewPool creates an empty pool with room for n entries.
func NewPool(n int) *Pool {
	return &Pool{
		keys:    make([]string, 0, n),
		entries: make(map[string]domain.LexicalEntry, n),
	}
}

// Add inserts e unless its key is already present. Returns false on collision.
func (p *Pool) Add(e domain.LexicalEntry) bool {
	key := e.Key()
	if _, ok := p.entries[key]; ok {
		return false
	}
	p.keys = append(p.keys, key)
	p.entries[key] = e
	return true
}

// Contains reports whether key (canonical form) is present.
func (p *Pool) Contains(key string) bool {
	_, ok := p.entries[key]
	return ok
}

// Get returns the entry stored under key.
func (p *Pool) Get(key string) (domain.LexicalEntry, bool) {
	e, ok := p.entries[key]
	return e, ok
}

// At returns the i-th entry in insertion order.
func (p *Pool) At(i int) domain.LexicalEntry {
	return p.entries[p.keys[i]]
}

// Len returns the number of entries.
func (p *Pool) Len() int {
	return len(p.keys)
}

// Keys returns the canonical keys in insertion order.
func (p *Pool) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Entries returns the entries in insertion order.
func (p *Pool) Entries() []domain.LexicalEntry {
	out := make([]domain.LexicalEntry, len(p.keys))
	for i, k := range p.keys {
		out[i] = p.entries[k]
	}
	return out
}

// KeySet returns every key of the pool as a set.
func (p *Pool) KeySet() domain.KeySet {
	s := make(domain.KeySet, len(p.keys))
	for _, k := range p.keys {
		s.Add(k)
	}
	return s
}

// Filter returns a new pool with the entries for which keep returns true,
// preserving order. keep may return a modified copy of the entry.
func (p *Pool) Filter(keep func(domain.LexicalEntry) (domain.LexicalEntry, bool)) *Pool {
	out := NewPool(len(p.keys))
	for _, k := range p.keys {
		if e, ok := keep(p.entries[k]); ok {
			out.Add(e)
		}
	}
	return out
}

// Truncate drops every entry after the first n.
func (p *Pool) Truncate(n int) {
	if n >= len(p.keys) {
		return
	}
	for _, k := range p.keys[n:] {
		delete(p.entries, k)
	}
	p.keys = p.keys[:n]
}
