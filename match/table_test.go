package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableVoteRejectsClaimedTarget(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	require.True(tbl.Vote("A.a", "B.x", Strong, nil))
	tbl.Confirm("A.a")

	require.False(tbl.Vote("A.b", "B.x", VeryStrong, nil), "target already confirmed to another source")
}

func TestTableVoteOnConfirmedSourceOnlyAcceptsSameTarget(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	tbl.ConfirmDirect("A.a", "B.x")

	require.True(tbl.Vote("A.a", "B.x", Weak, nil))
	require.False(tbl.Vote("A.a", "B.y", Weak, nil))
}

func TestTableVoteAppliesFilter(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	alwaysReject := func(entry *Entry, target string) bool { return false }
	require.False(tbl.Vote("A.a", "B.x", Strong, alwaysReject))
	_, ok := tbl.PendingEntry("A.a")
	require.True(ok, "a pending entry is still created even when the first vote is filtered out")
}

func TestTableConfirmPurgesTargetFromOtherPendingEntries(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	tbl.Vote("A.a", "B.x", Strong, nil)
	tbl.Vote("A.b", "B.x", Weak, nil)
	require.Equal(Weak, mustEntry(t, tbl, "A.b").Votes("B.x"))

	tbl.Confirm("A.a")
	require.Equal(0, mustEntry(t, tbl, "A.b").Votes("B.x"))
}

func TestTableConfirmPanicsOnNoChosenTarget(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	tbl.getOrCreate("A.a")
	require.Panics(func() { tbl.Confirm("A.a") })
}

func TestTableConfirmPanicsOnUnknownSource(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	require.Panics(func() { tbl.Confirm("A.unknown") })
}

func TestTableConfirmDirectIdempotent(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	require.True(tbl.ConfirmDirect("A.a", "B.x"))
	require.True(tbl.ConfirmDirect("A.a", "B.x"))
	require.False(tbl.ConfirmDirect("A.b", "B.x"))
}

func TestTableApplyOwnerLockPurgesWrongOwnerTargets(t *testing.T) {
	require := require.New(t)

	tbl := NewTable()
	tbl.Vote("A.m", "B1.x", Weak, nil)
	tbl.Vote("A.m", "B2.y", Strong, nil)

	owners := map[string]string{"B1.x": "B1", "B2.y": "B2"}
	tbl.ApplyOwnerLock("A.m", "B1", func(target string) (string, bool) {
		o, ok := owners[target]
		return o, ok
	})

	entry := mustEntry(t, tbl, "A.m")
	require.Equal(0, entry.Votes("B2.y"))
	require.Equal(Weak, entry.Votes("B1.x"))
	require.Equal("B1", entry.OwnerLock())
}

func mustEntry(t *testing.T, tbl *Table, source string) *Entry {
	t.Helper()
	e, ok := tbl.PendingEntry(source)
	require.New(t).True(ok)
	return e
}
