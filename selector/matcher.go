package selector

// Matches reports whether e satisfies any complex selector in list.
func Matches(e Element, list List) bool {
	for _, c := range list {
		if matchComplex(c, e) {
			return true
		}
	}
	return false
}

func matchComplex(c Complex, e Element) bool {
	idx := len(c.compounds) - 1
	if !matchCompound(c.compounds[idx], e) {
		return false
	}
	return matchLeftward(c, idx, e)
}

// matchLeftward walks the combinators to the left of compounds[idx],
// exactly : descendant succeeds if any ancestor matches,
// child only the immediate parent, next-sibling only the immediately
// preceding element sibling, subsequent-sibling any preceding sibling.
func matchLeftward(c Complex, idx int, e Element) bool {
	if idx == 0 {
		return true
	}
	comb := c.combinators[idx-1]
	left := c.compounds[idx-1]

	switch comb {
	case descendant:
		for anc := e.Parent(); anc != nil; anc = anc.Parent() {
			if matchCompound(left, anc) && matchLeftward(c, idx-1, anc) {
				return true
			}
		}
		return false
	case child:
		p := e.Parent()
		if p == nil {
			return false
		}
		return matchCompound(left, p) && matchLeftward(c, idx-1, p)
	case nextSibling:
		p := e.PreviousElementSibling()
		if p == nil {
			return false
		}
		return matchCompound(left, p) && matchLeftward(c, idx-1, p)
	case subsequentSibling:
		for sib := e.PreviousElementSibling(); sib != nil; sib = sib.PreviousElementSibling() {
			if matchCompound(left, sib) && matchLeftward(c, idx-1, sib) {
				return true
			}
		}
		return false
	}
	return false
}

func matchCompound(c Compound, e Element) bool {
	for _, s := range c.simples {
		if !matchSimple(s, e) {
			return false
		}
	}
	return true
}

func matchSimple(s simple, e Element) bool {
	switch s.kindTag {
	case kindUniversal:
		return true
	case kindType:
		return foldCase(e.TagName()) == s.name
	case kindID:
		return e.ID() == s.id
	case kindClass:
		for _, c := range e.ClassNames() {
			if c == s.class {
				return true
			}
		}
		return false
	case kindAttr:
		return matchAttr(s, e)
	case kindPseudo:
		return matchPseudo(s, e)
	}
	return false
}

func matchAttr(s simple, e Element) bool {
	v, ok := e.AttrValue(s.attrName)
	if !ok {
		return false
	}
	if s.attrOp == attrPresence {
		return true
	}
	want := s.attrValue
	have := v
	if s.attrCI {
		want = foldCase(want)
		have = foldCase(have)
	}
	switch s.attrOp {
	case attrEquals:
		return have == want
	case attrIncludes:
		return containsToken(have, want)
	case attrDashMatch:
		return have == want || len(have) > len(want) && have[:len(want)+1] == want+"-"
	case attrPrefix:
		return want != "" && len(have) >= len(want) && have[:len(want)] == want
	case attrSuffix:
		return want != "" && len(have) >= len(want) && have[len(have)-len(want):] == want
	case attrSubstring:
		return want != "" && indexOf(have, want) >= 0
	}
	return false
}

func containsToken(s, tok string) bool {
	start := 0
	for start <= len(s) {
		end := start
		for end < len(s) && s[end] != ' ' {
			end++
		}
		if s[start:end] == tok && tok != "" {
			return true
		}
		start = end + 1
	}
	return false
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

func matchPseudo(s simple, e Element) bool {
	switch s.pseudo {
	case pseudoNot:
		return !Matches(e, s.pseudoArg)
	case pseudoFirstChild:
		return e.ElementIndex() == 1
	case pseudoLastChild:
		return e.ElementIndex() == e.ElementCount()
	case pseudoOnlyChild:
		return e.ElementIndex() == 1 && e.ElementCount() == 1
	case pseudoFirstOfType:
		return e.ElementIndexOfType() == 1
	case pseudoLastOfType:
		return e.ElementIndexOfType() == e.ElementCountOfType()
	case pseudoOnlyOfType:
		return e.ElementIndexOfType() == 1 && e.ElementCountOfType() == 1
	case pseudoNthChild:
		return s.pseudoNth.Matches(e.ElementIndex())
	case pseudoNthLastChild:
		return s.pseudoNth.Matches(e.ElementCount() - e.ElementIndex() + 1)
	case pseudoNthOfType:
		return s.pseudoNth.Matches(e.ElementIndexOfType())
	case pseudoNthLastOfType:
		return s.pseudoNth.Matches(e.ElementCountOfType() - e.ElementIndexOfType() + 1)
	case pseudoEmpty:
		return e.IsEmpty()
	case pseudoRoot:
		return e.IsRoot()
	}
	return false
}
