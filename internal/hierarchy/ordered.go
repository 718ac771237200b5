package hierarchy

import "github.com/alexanderramin/wbsimport/internal/importer"

// Ordered reorders entries so that every parent is persisted before its
// children, then resolves like Forward. Input that is already parent-first
// comes back unchanged. Entries stuck in a parent cycle keep their relative
// order at the end and resolve as roots unless another entry supplied their
// parent first.
type Ordered struct {
	mapping
}

func NewOrdered() *Ordered {
	return &Ordered{mapping: newMapping()}
}

func (o *Ordered) Order(entries []importer.WBSEntry) []importer.WBSEntry {
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.ID] = true
	}

	out := make([]importer.WBSEntry, 0, len(entries))
	placed := make([]bool, len(entries))
	emitted := make(map[string]bool, len(entries))
	waiting := make(map[string][]int) // parent id -> indexes of children held back

	var emit func(i int)
	emit = func(i int) {
		placed[i] = true
		out = append(out, entries[i])
		id := entries[i].ID
		if emitted[id] {
			return
		}
		emitted[id] = true
		held := waiting[id]
		delete(waiting, id)
		for _, child := range held {
			emit(child)
		}
	}

	for i, e := range entries {
		parent := e.ParentKey()
		if parent == "" || !known[parent] || emitted[parent] {
			emit(i)
			continue
		}
		waiting[parent] = append(waiting[parent], i)
	}

	for i, e := range entries {
		if !placed[i] {
			out = append(out, e)
		}
	}
	return out
}
