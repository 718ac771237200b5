// Package hierarchy translates the file-local WBS references of one import
// into persisted node identities.
package hierarchy

import (
	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/importer"
)

// Ref is the persisted identity a source entry resolved to.
type Ref struct {
	ID       int64
	PublicID string
}

// Resolver maps source-local WBS ids to persisted nodes for a single project
// import. Instances hold per-import state and must not be shared between
// concurrent imports.
type Resolver interface {
	// Order returns the entries in the order they should be persisted.
	Order(entries []importer.WBSEntry) []importer.WBSEntry
	// Record maps sourceID to node, replacing any earlier mapping.
	Record(sourceID string, node *domain.WBS)
	// ResolveParent returns the internal id of the node recorded for
	// sourceParentID, or nil when the reference is empty or unknown.
	ResolveParent(sourceParentID *string) *int64
	// Resolved returns the identity recorded for sourceID.
	Resolved(sourceID string) (Ref, bool)
}

// Mode selects a Resolver implementation.
type Mode string

const (
	// ModeForward persists entries in file order; a parent that has not been
	// seen yet resolves to no parent.
	ModeForward Mode = "forward"
	// ModeOrdered moves every entry after its parent before persisting.
	ModeOrdered Mode = "ordered"
)

// Factory builds a fresh Resolver for each project import.
type Factory func() Resolver

// FactoryFor returns the factory for mode.
func FactoryFor(mode Mode) (Factory, error) {
	switch mode {
	case ModeForward, "":
		return func() Resolver { return NewForward() }, nil
	case ModeOrdered:
		return func() Resolver { return NewOrdered() }, nil
	default:
		return nil, errors.Errorf("unknown resolver mode %q (want %q or %q)", mode, ModeForward, ModeOrdered)
	}
}

// mapping is the source id -> persisted identity table both resolvers share.
type mapping struct {
	refs map[string]Ref
}

func newMapping() mapping {
	return mapping{refs: make(map[string]Ref)}
}

func (m mapping) Record(sourceID string, node *domain.WBS) {
	m.refs[sourceID] = Ref{ID: node.ID, PublicID: node.PublicID}
}

func (m mapping) ResolveParent(sourceParentID *string) *int64 {
	if sourceParentID == nil || *sourceParentID == "" {
		return nil
	}
	ref, ok := m.refs[*sourceParentID]
	if !ok {
		return nil
	}
	id := ref.ID
	return &id
}

func (m mapping) Resolved(sourceID string) (Ref, bool) {
	ref, ok := m.refs[sourceID]
	return ref, ok
}
