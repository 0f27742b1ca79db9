package selector

import (
	"github.com/oxhq/domkit/domerr"
)

// Parse parses a selector list. It does not cache parsed
// selectors; callers that re-run the same selector string repeatedly are
// expected to cache the returned List themselves.
func Parse(s string) (List, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tEOF {
		return nil, domerr.New(domerr.SyntaxError, "unexpected trailing input in selector %q", s)
	}
	return list, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) advance()    { p.pos++ }
func (p *parser) skipWS() bool {
	skipped := false
	for p.cur().kind == tWS {
		p.advance()
		skipped = true
	}
	return skipped
}

func (p *parser) parseList() (List, error) {
	var list List
	p.skipWS()
	for {
		c, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		list = append(list, c)
		p.skipWS()
		if p.cur().kind == tComma {
			p.advance()
			p.skipWS()
			continue
		}
		break
	}
	return list, nil
}

func (p *parser) parseComplex() (Complex, error) {
	first, err := p.parseCompound()
	if err != nil {
		return Complex{}, err
	}
	compounds := []Compound{first}
	var combs []Combinator

	for {
		comb, ok, err := p.parseCombinator()
		if err != nil {
			return Complex{}, err
		}
		if !ok {
			break
		}
		next, err := p.parseCompound()
		if err != nil {
			return Complex{}, err
		}
		compounds = append(compounds, next)
		combs = append(combs, comb)
	}
	return Complex{compounds: compounds, combinators: combs}, nil
}

// parseCombinator consumes an explicit combinator token or a bare
// whitespace descendant combinator, reporting ok=false at a comma or EOF.
func (p *parser) parseCombinator() (Combinator, bool, error) {
	sawWS := p.skipWS()
	switch p.cur().kind {
	case tCombinator:
		tok := p.cur().text
		p.advance()
		p.skipWS()
		switch tok {
		case ">":
			return child, true, nil
		case "+":
			return nextSibling, true, nil
		case "~":
			return subsequentSibling, true, nil
		}
	case tComma, tEOF, tRParen:
		return 0, false, nil
	}
	if sawWS {
		return descendant, true, nil
	}
	return 0, false, nil
}

func startsCompound(k tokenKind) bool {
	switch k {
	case tIdent, tHash, tDot, tStar, tColon, tLBracket:
		return true
	}
	return false
}

func (p *parser) parseCompound() (Compound, error) {
	var simples []simple
	for startsCompound(p.cur().kind) {
		s, err := p.parseSimple()
		if err != nil {
			return Compound{}, err
		}
		simples = append(simples, s)
	}
	if len(simples) == 0 {
		return Compound{}, domerr.New(domerr.SyntaxError, "expected a selector, found %q", p.cur().text)
	}
	return Compound{simples: simples}, nil
}

func (p *parser) parseSimple() (simple, error) {
	switch p.cur().kind {
	case tStar:
		p.advance()
		return simple{kindTag: kindUniversal}, nil
	case tIdent:
		name := p.cur().text
		p.advance()
		return simple{kindTag: kindType, name: foldCase(name)}, nil
	case tHash:
		p.advance()
		if p.cur().kind != tIdent {
			return simple{}, domerr.New(domerr.SyntaxError, "expected identifier after '#'")
		}
		id := p.cur().text
		p.advance()
		return simple{kindTag: kindID, id: id}, nil
	case tDot:
		p.advance()
		if p.cur().kind != tIdent {
			return simple{}, domerr.New(domerr.SyntaxError, "expected identifier after '.'")
		}
		class := p.cur().text
		p.advance()
		return simple{kindTag: kindClass, class: class}, nil
	case tLBracket:
		return p.parseAttr()
	case tColon:
		return p.parsePseudo()
	}
	return simple{}, domerr.New(domerr.SyntaxError, "unexpected token %q", p.cur().text)
}

func (p *parser) expect(k tokenKind) (token, error) {
	if p.cur().kind != k {
		return token{}, domerr.New(domerr.SyntaxError, "unexpected token %q", p.cur().text)
	}
	t := p.cur()
	p.advance()
	return t, nil
}

func (p *parser) parseAttr() (simple, error) {
	if _, err := p.expect(tLBracket); err != nil {
		return simple{}, err
	}
	p.skipWS()
	nameTok, err := p.expect(tIdent)
	if err != nil {
		return simple{}, err
	}
	s := simple{kindTag: kindAttr, attrName: foldCase(nameTok.text), attrOp: attrPresence}
	p.skipWS()

	if p.cur().kind == tDelim {
		op := p.cur().text
		p.advance()
		switch op {
		case "=":
			s.attrOp = attrEquals
		case "~=":
			s.attrOp = attrIncludes
		case "|=":
			s.attrOp = attrDashMatch
		case "^=":
			s.attrOp = attrPrefix
		case "$=":
			s.attrOp = attrSuffix
		case "*=":
			s.attrOp = attrSubstring
		default:
			return simple{}, domerr.New(domerr.SyntaxError, "unknown attribute operator %q", op)
		}
		p.skipWS()
		switch p.cur().kind {
		case tString:
			s.attrValue = p.cur().text
			p.advance()
		case tIdent:
			s.attrValue = p.cur().text
			p.advance()
		default:
			return simple{}, domerr.New(domerr.SyntaxError, "expected attribute value")
		}
		p.skipWS()
		if p.cur().kind == tIdent && (p.cur().text == "i" || p.cur().text == "I") {
			s.attrCI = true
			p.advance()
			p.skipWS()
		}
	}

	if _, err := p.expect(tRBracket); err != nil {
		return simple{}, err
	}
	return s, nil
}

var pseudoKinds = map[string]pseudoKind{
	"first-child":     pseudoFirstChild,
	"last-child":      pseudoLastChild,
	"only-child":      pseudoOnlyChild,
	"first-of-type":   pseudoFirstOfType,
	"last-of-type":    pseudoLastOfType,
	"only-of-type":    pseudoOnlyOfType,
	"empty":           pseudoEmpty,
	"root":            pseudoRoot,
}

var pseudoFnKinds = map[string]pseudoKind{
	"not":              pseudoNot,
	"nth-child":        pseudoNthChild,
	"nth-last-child":   pseudoNthLastChild,
	"nth-of-type":      pseudoNthOfType,
	"nth-last-of-type": pseudoNthLastOfType,
}

func (p *parser) parsePseudo() (simple, error) {
	if _, err := p.expect(tColon); err != nil {
		return simple{}, err
	}
	nameTok, err := p.expect(tIdent)
	if err != nil {
		return simple{}, err
	}
	name := foldCase(nameTok.text)

	if p.cur().kind != tLParen {
		kind, ok := pseudoKinds[name]
		if !ok {
			return simple{}, domerr.New(domerr.SyntaxError, "unsupported pseudo-class %q", name)
		}
		return simple{kindTag: kindPseudo, pseudo: kind}, nil
	}

	kind, ok := pseudoFnKinds[name]
	if !ok {
		return simple{}, domerr.New(domerr.SyntaxError, "unsupported pseudo-class %q", name)
	}
	p.advance() // (
	p.skipWS()

	s := simple{kindTag: kindPseudo, pseudo: kind}
	switch kind {
	case pseudoNot:
		inner, err := p.parseList()
		if err != nil {
			return simple{}, err
		}
		s.pseudoArg = inner
	default: // nth-* formulas
		text, err := p.readNthText()
		if err != nil {
			return simple{}, err
		}
		nth, err := ParseNth(text)
		if err != nil {
			return simple{}, err
		}
		s.pseudoNth = nth
	}

	p.skipWS()
	if _, err := p.expect(tRParen); err != nil {
		return simple{}, err
	}
	return s, nil
}

// readNthText reassembles the raw text of an An+B formula up to the
// closing paren, since the tokenizer has already split it into ident/
// combinator/whitespace tokens.
func (p *parser) readNthText() (string, error) {
	var out []byte
	for {
		switch p.cur().kind {
		case tRParen, tEOF:
			if len(out) == 0 {
				return "", domerr.New(domerr.SyntaxError, "empty an+b formula")
			}
			return string(out), nil
		case tWS:
			out = append(out, ' ')
		case tIdent, tCombinator:
			out = append(out, p.cur().text...)
		default:
			return "", domerr.New(domerr.SyntaxError, "invalid an+b formula")
		}
		p.advance()
	}
}
