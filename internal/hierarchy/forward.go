package hierarchy

import "github.com/alexanderramin/wbsimport/internal/importer"

// Forward resolves parents in a single pass over the file order. An entry
// whose parent appears later in the file is persisted as a root.
type Forward struct {
	mapping
}

func NewForward() *Forward {
	return &Forward{mapping: newMapping()}
}

// Order returns entries unchanged.
func (f *Forward) Order(entries []importer.WBSEntry) []importer.WBSEntry {
	return entries
}
