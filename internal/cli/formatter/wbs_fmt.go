package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/service"
)

// WBSTreeItems flattens a WBS forest depth-first. Roots sit at level 0.
func WBSTreeItems(roots []*service.WBSTreeNode) []TreeItem {
	var items []TreeItem
	var walk func(nodes []*service.WBSTreeNode, level int, ancestors []bool)
	walk = func(nodes []*service.WBSTreeNode, level int, ancestors []bool) {
		for i, n := range nodes {
			last := i == len(nodes)-1
			item := TreeItem{
				Code:      n.Node.Code,
				Title:     n.Node.Name,
				Level:     level,
				IsLast:    last,
				Ancestors: append([]bool(nil), ancestors...),
			}
			if len(n.Children) > 0 {
				item.Detail = fmt.Sprintf("%d", len(n.Children))
			}
			items = append(items, item)
			next := ancestors
			if level > 0 {
				next = append(append([]bool(nil), ancestors...), last)
			}
			walk(n.Children, level+1, next)
		}
	}
	walk(roots, 0, nil)
	return items
}

// FormatWBSTree renders a schedule header followed by its WBS tree.
func FormatWBSTree(sch *domain.Schedule, roots []*service.WBSTreeNode) string {
	var b strings.Builder
	b.WriteString(Header(sch.Title))
	b.WriteString("\n")
	if len(roots) == 0 {
		b.WriteString(Dim("No WBS nodes."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTree(WBSTreeItems(roots)))
	return b.String()
}
