package watchstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/domkit/dom"
)

func TestRecordTypeName(t *testing.T) {
	assert.Equal(t, "childList", recordTypeName(dom.RecordChildList))
	assert.Equal(t, "attributes", recordTypeName(dom.RecordAttributes))
	assert.Equal(t, "characterData", recordTypeName(dom.RecordCharacterData))
}

func TestDescribeNodes(t *testing.T) {
	doc := dom.NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")

	assert.Equal(t, "", describeNodes(nil))
	assert.Equal(t, "a", describeNodes([]*dom.Node{a}))
	assert.Equal(t, "a,b", describeNodes([]*dom.Node{a, b}))
}
