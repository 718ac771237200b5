package testutil

import (
	"github.com/alexanderramin/wbsimport/internal/importer"
)

// EntryOption customizes a source WBS entry.
type EntryOption func(*importer.WBSEntry)

func WithParent(id string) EntryOption {
	return func(e *importer.WBSEntry) {
		e.ParentID = &id
	}
}

func WithName(name string) EntryOption {
	return func(e *importer.WBSEntry) {
		e.Name = name
	}
}

// NewEntry builds a source WBS entry; the name defaults to the code.
func NewEntry(id, code string, opts ...EntryOption) importer.WBSEntry {
	e := importer.WBSEntry{ID: id, Code: code, Name: code}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewSource wraps projects into a source model.
func NewSource(projects ...importer.Project) *importer.Source {
	return &importer.Source{Projects: projects}
}

// NewProject builds a source project.
func NewProject(shortName string, entries ...importer.WBSEntry) importer.Project {
	return importer.Project{ShortName: shortName, WBS: entries}
}

// TowerA is the three-level project used across the import tests:
// A -> A.1 -> A.1.1.
func TowerA() importer.Project {
	return NewProject("Tower A",
		NewEntry("1", "A", WithName("Root")),
		NewEntry("2", "A.1", WithParent("1"), WithName("Sub")),
		NewEntry("3", "A.1.1", WithParent("2"), WithName("Leaf")),
	)
}
