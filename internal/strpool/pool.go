// Package strpool implements the per-document string pool that interns
// element tag names and attribute local names.
//
// Interning is backed by a compressed trie rather than a bare map: documents
// built from a tag/attribute vocabulary with shared prefixes (HTML's
// "data-*"/"aria-*" families, XML namespaces with common local-name
// roots) share storage along those prefixes, and lookups are O(len(key))
// rather than a hash of the whole key.
package strpool

import (
	"sync"

	"github.com/derekparker/trie"
)

// Pool interns strings for a single document. Every method holds mu while
// it reads or changes the trie.
type Pool struct {
	mu sync.Mutex // guards t in Intern, Len and HasPrefix
	t  *trie.Trie
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{t: trie.New()}
}

// Intern returns the pool's canonical copy of s, adding s to the pool on
// first sight. Every subsequent Intern of an equal string returns the
// stored canonical string, which shares its bytes with that first copy.
func (p *Pool) Intern(s string) string {
	if s == "" {
		return s
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if node, ok := p.t.Find(s); ok {
		if canon, ok := node.Meta().(string); ok {
			return canon
		}
	}
	p.t.Add(s, s)
	return s
}

// Len reports how many distinct strings are currently interned.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.t.Keys())
}

// HasPrefix reports whether any interned tag or attribute local name starts
// with prefix.
func (p *Pool) HasPrefix(prefix string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.t.PrefixSearch(prefix)) > 0
}
