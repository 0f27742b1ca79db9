package dom

import (
	"strings"

	"github.com/oxhq/domkit/domerr"
)

// DOMTokenList is a thin live view over an attribute's whitespace-separated
// token set, e.g. Element.classList over "class".
type DOMTokenList struct {
	el       *Node
	attrName string
}

func (l *DOMTokenList) tokens() []string {
	v, _ := l.el.GetAttribute(l.attrName)
	return strings.Fields(v)
}

func (l *DOMTokenList) serialize(toks []string) error {
	return l.el.SetAttribute(l.attrName, strings.Join(toks, " "))
}

// Length is the number of tokens currently present.
func (l *DOMTokenList) Length() int { return len(l.tokens()) }

// Item returns the i-th token, or "" if out of range.
func (l *DOMTokenList) Item(i int) string {
	toks := l.tokens()
	if i < 0 || i >= len(toks) {
		return ""
	}
	return toks[i]
}

// Contains reports whether token is present.
func (l *DOMTokenList) Contains(token string) bool {
	for _, t := range l.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends each token not already present, in the order given.
func (l *DOMTokenList) Add(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	toks := l.tokens()
	for _, want := range tokens {
		if !containsStr(toks, want) {
			toks = append(toks, want)
		}
	}
	return l.serialize(toks)
}

// Remove deletes each given token if present.
func (l *DOMTokenList) Remove(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	toks := l.tokens()
	kept := toks[:0]
	for _, t := range toks {
		if !containsStr(tokens, t) {
			kept = append(kept, t)
		}
	}
	return l.serialize(kept)
}

// Toggle adds token if absent and removes it if present, or forces the
// given state when force is non-nil. Returns the token's resulting
// presence.
func (l *DOMTokenList) Toggle(token string, force *bool) (bool, error) {
	if err := validateTokens([]string{token}); err != nil {
		return false, err
	}
	has := l.Contains(token)
	want := !has
	if force != nil {
		want = *force
	}
	if want == has {
		return has, nil
	}
	if want {
		return true, l.Add(token)
	}
	return false, l.Remove(token)
}

func validateTokens(tokens []string) error {
	for _, t := range tokens {
		if t == "" || strings.ContainsAny(t, " \t\n\r\f") {
			return domerr.New(domerr.InvalidCharacterError, "invalid token %q", t)
		}
	}
	return nil
}

func containsStr(haystack []string, want string) bool {
	for _, h := range haystack {
		if h == want {
			return true
		}
	}
	return false
}
