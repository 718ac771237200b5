package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/hierarchy"
	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/testutil"
)

func ids(entries []importer.WBSEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func strPtr(s string) *string { return &s }

// persist simulates the orchestrator: nodes get sequential ids in processing
// order and parents are resolved before each record.
func persist(r hierarchy.Resolver, entries []importer.WBSEntry) map[string]*domain.WBS {
	nodes := make(map[string]*domain.WBS)
	var next int64
	for _, e := range r.Order(entries) {
		next++
		node := &domain.WBS{
			ID:       next,
			PublicID: "pub-" + e.ID,
			Code:     e.Code,
			ParentID: r.ResolveParent(e.ParentID),
		}
		r.Record(e.ID, node)
		nodes[e.ID] = node
	}
	return nodes
}

func TestFactoryFor(t *testing.T) {
	f, err := hierarchy.FactoryFor(hierarchy.ModeForward)
	require.NoError(t, err)
	assert.IsType(t, &hierarchy.Forward{}, f())

	f, err = hierarchy.FactoryFor("")
	require.NoError(t, err)
	assert.IsType(t, &hierarchy.Forward{}, f())

	f, err = hierarchy.FactoryFor(hierarchy.ModeOrdered)
	require.NoError(t, err)
	assert.IsType(t, &hierarchy.Ordered{}, f())

	_, err = hierarchy.FactoryFor("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestFactory_ReturnsFreshInstances(t *testing.T) {
	f, err := hierarchy.FactoryFor(hierarchy.ModeForward)
	require.NoError(t, err)

	first := f()
	first.Record("1", &domain.WBS{ID: 7})

	_, ok := f().Resolved("1")
	assert.False(t, ok)
}

func TestResolveParent_EmptyAndUnknown(t *testing.T) {
	for _, r := range []hierarchy.Resolver{hierarchy.NewForward(), hierarchy.NewOrdered()} {
		r.Record("1", &domain.WBS{ID: 10, PublicID: "p1"})

		assert.Nil(t, r.ResolveParent(nil))
		assert.Nil(t, r.ResolveParent(strPtr("")))
		assert.Nil(t, r.ResolveParent(strPtr("404")))

		got := r.ResolveParent(strPtr("1"))
		require.NotNil(t, got)
		assert.Equal(t, int64(10), *got)
	}
}

func TestRecord_Overwrites(t *testing.T) {
	r := hierarchy.NewForward()
	r.Record("1", &domain.WBS{ID: 1, PublicID: "first"})
	r.Record("1", &domain.WBS{ID: 2, PublicID: "second"})

	ref, ok := r.Resolved("1")
	require.True(t, ok)
	assert.Equal(t, hierarchy.Ref{ID: 2, PublicID: "second"}, ref)
}

func TestForward_RoundTripTree(t *testing.T) {
	r := hierarchy.NewForward()
	entries := testutil.TowerA().WBS

	nodes := persist(r, entries)

	assert.Nil(t, nodes["1"].ParentID)
	require.NotNil(t, nodes["2"].ParentID)
	assert.Equal(t, nodes["1"].ID, *nodes["2"].ParentID)
	require.NotNil(t, nodes["3"].ParentID)
	assert.Equal(t, nodes["2"].ID, *nodes["3"].ParentID)

	// Every source parent link maps to the recorded parent identity.
	for _, e := range entries {
		if e.ParentID == nil {
			continue
		}
		parent, ok := r.Resolved(*e.ParentID)
		require.True(t, ok)
		assert.Equal(t, parent.ID, *nodes[e.ID].ParentID)
	}
}

func TestForward_ForwardReferenceBecomesRoot(t *testing.T) {
	r := hierarchy.NewForward()
	entries := []importer.WBSEntry{
		testutil.NewEntry("2", "A.1", testutil.WithParent("1")),
		testutil.NewEntry("1", "A"),
	}

	assert.Equal(t, []string{"2", "1"}, ids(r.Order(entries)))

	nodes := persist(r, entries)
	assert.Nil(t, nodes["2"].ParentID)
	assert.Nil(t, nodes["1"].ParentID)
}

func TestOrdered_KeepsParentFirstInput(t *testing.T) {
	entries := append(testutil.TowerA().WBS,
		testutil.NewEntry("4", "A.2", testutil.WithParent("1")),
		testutil.NewEntry("5", "B"),
	)

	got := hierarchy.NewOrdered().Order(entries)
	assert.Equal(t, entries, got)
}

func TestOrdered_MovesChildrenAfterParents(t *testing.T) {
	entries := []importer.WBSEntry{
		testutil.NewEntry("3", "A.1.1", testutil.WithParent("2")),
		testutil.NewEntry("4", "A.2", testutil.WithParent("1")),
		testutil.NewEntry("2", "A.1", testutil.WithParent("1")),
		testutil.NewEntry("1", "A"),
	}

	r := hierarchy.NewOrdered()
	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(r.Order(entries)))

	nodes := persist(r, entries)
	assert.Nil(t, nodes["1"].ParentID)
	assert.Equal(t, nodes["1"].ID, *nodes["4"].ParentID)
	assert.Equal(t, nodes["1"].ID, *nodes["2"].ParentID)
	assert.Equal(t, nodes["2"].ID, *nodes["3"].ParentID)
}

func TestOrdered_UnknownParentStaysInPlace(t *testing.T) {
	entries := []importer.WBSEntry{
		testutil.NewEntry("1", "A"),
		testutil.NewEntry("2", "X", testutil.WithParent("missing")),
		testutil.NewEntry("3", "A.1", testutil.WithParent("1")),
	}

	r := hierarchy.NewOrdered()
	assert.Equal(t, []string{"1", "2", "3"}, ids(r.Order(entries)))

	nodes := persist(r, entries)
	assert.Nil(t, nodes["2"].ParentID)
}

func TestOrdered_CycleAndSelfParentAreRoots(t *testing.T) {
	entries := []importer.WBSEntry{
		testutil.NewEntry("1", "A", testutil.WithParent("2")),
		testutil.NewEntry("9", "Z"),
		testutil.NewEntry("2", "B", testutil.WithParent("1")),
		testutil.NewEntry("3", "C", testutil.WithParent("3")),
	}

	r := hierarchy.NewOrdered()
	got := r.Order(entries)
	assert.Equal(t, []string{"9", "1", "2", "3"}, ids(got))

	nodes := persist(r, entries)
	assert.Len(t, nodes, 4)
	assert.Nil(t, nodes["9"].ParentID)
	// 1 is persisted first of the cycle, so it has no parent yet; 2 then
	// links to it.
	assert.Nil(t, nodes["1"].ParentID)
	require.NotNil(t, nodes["2"].ParentID)
	assert.Equal(t, nodes["1"].ID, *nodes["2"].ParentID)
	assert.Nil(t, nodes["3"].ParentID)
}

func TestOrdered_EveryEntryEmittedOnce(t *testing.T) {
	entries := []importer.WBSEntry{
		testutil.NewEntry("c", "C", testutil.WithParent("b")),
		testutil.NewEntry("b", "B", testutil.WithParent("a")),
		testutil.NewEntry("a", "A"),
		testutil.NewEntry("d", "D", testutil.WithParent("a")),
	}

	got := hierarchy.NewOrdered().Order(entries)
	assert.ElementsMatch(t, ids(entries), ids(got))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
}
