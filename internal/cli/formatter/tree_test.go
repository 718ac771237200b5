package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/service"
)

func node(id int64, code, name string, children ...*service.WBSTreeNode) *service.WBSTreeNode {
	return &service.WBSTreeNode{
		Node:     &domain.WBS{ID: id, Code: code, Name: name},
		Children: children,
	}
}

func sampleForest() []*service.WBSTreeNode {
	return []*service.WBSTreeNode{
		node(1, "A", "Root",
			node(2, "A.1", "Sub", node(3, "A.1.1", "Leaf")),
			node(4, "A.2", "Two"),
		),
		node(5, "B", "Other"),
	}
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil))
}

func TestWBSTreeItems_DepthFirst(t *testing.T) {
	items := WBSTreeItems(sampleForest())
	require.Len(t, items, 5)

	codes := make([]string, len(items))
	levels := make([]int, len(items))
	for i, it := range items {
		codes[i] = it.Code
		levels[i] = it.Level
	}
	assert.Equal(t, []string{"A", "A.1", "A.1.1", "A.2", "B"}, codes)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, levels)
	assert.Equal(t, "2", items[0].Detail)
	assert.True(t, items[3].IsLast)
	assert.False(t, items[1].IsLast)
}

func TestRenderTree_Connectors(t *testing.T) {
	out := RenderTree(WBSTreeItems(sampleForest()))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], "A Root"))
	assert.Contains(t, lines[0], "[ 2 ]")
	assert.True(t, strings.HasPrefix(lines[1], "├─ A.1 Sub"))
	assert.Equal(t, "│  └─ A.1.1 Leaf", lines[2])
	assert.Equal(t, "└─ A.2 Two", lines[3])
	assert.Equal(t, "B Other", lines[4])
}

func TestRenderTree_BlankIndentUnderLastSibling(t *testing.T) {
	roots := []*service.WBSTreeNode{
		node(1, "A", "Root", node(2, "A.1", "Sub", node(3, "A.1.1", "Leaf"))),
	}
	out := RenderTree(WBSTreeItems(roots))
	assert.Contains(t, out, "   └─ A.1.1 Leaf")
}

func TestFormatWBSTree(t *testing.T) {
	sch := &domain.Schedule{Title: "Tower A"}

	out := FormatWBSTree(sch, sampleForest())
	assert.Contains(t, out, "TOWER A")
	assert.Contains(t, out, "A.1.1 Leaf")

	assert.Contains(t, FormatWBSTree(sch, nil), "No WBS nodes.")
}
