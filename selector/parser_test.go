package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleTypeSelector(t *testing.T) {
	list, err := Parse("DIV")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].compounds, 1)
	require.Len(t, list[0].compounds[0].simples, 1)
	assert.Equal(t, kindType, list[0].compounds[0].simples[0].kindTag)
	assert.Equal(t, "div", list[0].compounds[0].simples[0].name)
}

func TestParseCompoundSelector(t *testing.T) {
	list, err := Parse("div.card#main[data-x]")
	require.NoError(t, err)
	require.Len(t, list, 1)
	simples := list[0].compounds[0].simples
	require.Len(t, simples, 4)
	assert.Equal(t, kindType, simples[0].kindTag)
	assert.Equal(t, kindClass, simples[1].kindTag)
	assert.Equal(t, "card", simples[1].class)
	assert.Equal(t, kindID, simples[2].kindTag)
	assert.Equal(t, "main", simples[2].id)
	assert.Equal(t, kindAttr, simples[3].kindTag)
	assert.Equal(t, attrPresence, simples[3].attrOp)
}

func TestParseCombinators(t *testing.T) {
	list, err := Parse("ul > li + li ~ li a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	c := list[0]
	require.Len(t, c.compounds, 5)
	require.Equal(t, []Combinator{child, nextSibling, subsequentSibling, descendant}, c.combinators)
}

func TestParseSelectorList(t *testing.T) {
	list, err := Parse("a, b , c")
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestParseAttrOperators(t *testing.T) {
	cases := map[string]AttrOp{
		`[a=b]`:    attrEquals,
		`[a~=b]`:   attrIncludes,
		`[a|=b]`:   attrDashMatch,
		`[a^=b]`:   attrPrefix,
		`[a$=b]`:   attrSuffix,
		`[a*=b]`:   attrSubstring,
	}
	for raw, want := range cases {
		list, err := Parse(raw)
		require.NoError(t, err, raw)
		s := list[0].compounds[0].simples[0]
		assert.Equal(t, want, s.attrOp, raw)
		assert.Equal(t, "b", s.attrValue, raw)
	}
}

func TestParseAttrCaseInsensitiveFlag(t *testing.T) {
	list, err := Parse(`[type=text i]`)
	require.NoError(t, err)
	s := list[0].compounds[0].simples[0]
	assert.True(t, s.attrCI)
}

func TestParsePseudoClassesWithoutArgs(t *testing.T) {
	list, err := Parse(":root")
	require.NoError(t, err)
	assert.Equal(t, pseudoRoot, list[0].compounds[0].simples[0].pseudo)
}

func TestParseNthChildPseudo(t *testing.T) {
	list, err := Parse(":nth-child(2n+1)")
	require.NoError(t, err)
	s := list[0].compounds[0].simples[0]
	assert.Equal(t, pseudoNthChild, s.pseudo)
	assert.Equal(t, Nth{A: 2, B: 1}, s.pseudoNth)
}

func TestParseNotPseudoRecursesIntoInnerList(t *testing.T) {
	list, err := Parse(":not(.hidden, #skip)")
	require.NoError(t, err)
	s := list[0].compounds[0].simples[0]
	assert.Equal(t, pseudoNot, s.pseudo)
	require.Len(t, s.pseudoArg, 2)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("div)")
	assert.Error(t, err)
}

func TestParseRejectsEmptyCompound(t *testing.T) {
	_, err := Parse(">")
	assert.Error(t, err)
}

func TestParseUniversalSelector(t *testing.T) {
	list, err := Parse("*")
	require.NoError(t, err)
	assert.Equal(t, kindUniversal, list[0].compounds[0].simples[0].kindTag)
}

func TestParseAttrSubstringNotConfusedWithUniversal(t *testing.T) {
	list, err := Parse(`[class*=foo]`)
	require.NoError(t, err)
	s := list[0].compounds[0].simples[0]
	assert.Equal(t, attrSubstring, s.attrOp)
	assert.Equal(t, "foo", s.attrValue)
}
