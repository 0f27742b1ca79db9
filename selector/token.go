package selector

import (
	"strings"

	"github.com/oxhq/domkit/domerr"
)

type tokenKind int

const (
	tEOF tokenKind = iota
	tIdent
	tHash
	tDot
	tStar
	tColon
	tLBracket
	tRBracket
	tLParen
	tRParen
	tComma
	tString
	tDelim     // =, ~=, |=, ^=, $=, *=
	tCombinator // > + ~
	tWS
)

type token struct {
	kind tokenKind
	text string
}

// lex tokenizes a selector string, collapsing runs of ASCII whitespace
// outside brackets/strings into a single tWS token so the parser can tell
// descendant combinators (bare whitespace) apart from combinators that are
// merely surrounded by whitespace.
func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		switch {
		case isSpace(c):
			j := i
			for j < n && isSpace(s[j]) {
				j++
			}
			toks = append(toks, token{tWS, s[i:j]})
			i = j
		case (c == '~' || c == '|' || c == '^' || c == '$' || c == '*') && peek(s, i+1) == '=':
			toks = append(toks, token{tDelim, s[i : i+2]})
			i += 2
		case c == '#':
			toks = append(toks, token{tHash, "#"})
			i++
		case c == '.':
			toks = append(toks, token{tDot, "."})
			i++
		case c == '*':
			toks = append(toks, token{tStar, "*"})
			i++
		case c == ':':
			toks = append(toks, token{tColon, ":"})
			i++
		case c == '[':
			toks = append(toks, token{tLBracket, "["})
			i++
		case c == ']':
			toks = append(toks, token{tRBracket, "]"})
			i++
		case c == '(':
			toks = append(toks, token{tLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tRParen, ")"})
			i++
		case c == ',':
			toks = append(toks, token{tComma, ","})
			i++
		case c == '>' || c == '+' || c == '~':
			toks = append(toks, token{tCombinator, string(c)})
			i++
		case c == '=':
			toks = append(toks, token{tDelim, "="})
			i++
		case c == '\'' || c == '"':
			j := i + 1
			for j < n && s[j] != c {
				j++
			}
			if j >= n {
				return nil, domerr.New(domerr.SyntaxError, "unterminated string in selector %q", s)
			}
			toks = append(toks, token{tString, s[i+1 : j]})
			i = j + 1
		case isIdentStart(c):
			j := i
			for j < n && isIdentPart(s[j]) {
				j++
			}
			toks = append(toks, token{tIdent, s[i:j]})
			i = j
		default:
			return nil, domerr.New(domerr.SyntaxError, "unexpected character %q in selector %q", string(c), s)
		}
	}
	toks = append(toks, token{tEOF, ""})
	return toks, nil
}

func peek(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// foldCase lowercases s; used for ASCII-case-insensitive HTML tag and
// attribute name comparisons.
func foldCase(s string) string { return strings.ToLower(s) }
