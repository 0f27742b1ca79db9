package dom

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// TestTextContentMatchesGoldenOutput renders a small tree's TextContent and
// diffs it against a golden string with go-difflib, the same tool the
// teacher pack uses for presenting transformation diffs, so a mismatch here
// reads as a unified diff instead of an opaque string inequality.
func TestTextContentMatchesGoldenOutput(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, Append(root, doc.CreateTextNode("Hello, ")))
	child := doc.CreateElement("em")
	require.NoError(t, Append(child, doc.CreateTextNode("World")))
	require.NoError(t, Append(root, child))
	require.NoError(t, Append(root, doc.CreateTextNode("!")))

	got := root.TextContent()
	want := "Hello, World!"

	if got != want {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		})
		require.NoError(t, err)
		t.Fatalf("TextContent mismatch:\n%s", diff)
	}
}
