package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNthKeywords(t *testing.T) {
	odd, err := ParseNth("odd")
	require.NoError(t, err)
	assert.Equal(t, Nth{A: 2, B: 1}, odd)

	even, err := ParseNth("even")
	require.NoError(t, err)
	assert.Equal(t, Nth{A: 2, B: 0}, even)
}

func TestParseNthForms(t *testing.T) {
	cases := []struct {
		raw  string
		want Nth
	}{
		{"2n+1", Nth{A: 2, B: 1}},
		{"2n-1", Nth{A: 2, B: -1}},
		{"-n+3", Nth{A: -1, B: 3}},
		{"n", Nth{A: 1, B: 0}},
		{"n+1", Nth{A: 1, B: 1}},
		{"3", Nth{A: 0, B: 3}},
		{"-1", Nth{A: 0, B: -1}},
		{" 2n + 1 ", Nth{A: 2, B: 1}},
	}
	for _, tc := range cases {
		got, err := ParseNth(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseNthRejectsGarbage(t *testing.T) {
	_, err := ParseNth("banana")
	assert.Error(t, err)

	_, err = ParseNth("")
	assert.Error(t, err)
}

func TestNthMatchesExistenceCheck(t *testing.T) {
	// 2n+1: odd positions 1,3,5,...
	odd := Nth{A: 2, B: 1}
	assert.True(t, odd.Matches(1))
	assert.False(t, odd.Matches(2))
	assert.True(t, odd.Matches(5))

	// -n+3: first three positions only.
	firstThree := Nth{A: -1, B: 3}
	assert.True(t, firstThree.Matches(1))
	assert.True(t, firstThree.Matches(3))
	assert.False(t, firstThree.Matches(4))

	// A == 0: exact match only.
	exact := Nth{A: 0, B: 3}
	assert.True(t, exact.Matches(3))
	assert.False(t, exact.Matches(1))
}
