// Package match implements the Match Tables and Voting Entries described
// in spec §3/§4.2: per-symbol-kind pending and confirmed state, with the
// cross-entry invariants (1-to-1 confirmed mapping, non-negative vote
// weights, owner-lock propagation) centralized here rather than left to
// callers — mirroring the teacher's rule that all state-table mutation
// is owned by a single orchestrator (here: engine.Engine; there:
// quorum.Static / poll.Set).
package match

import "fmt"

// Table holds the pending and confirmed-forward/inverse maps for one
// symbol kind (class, method, or field). It enforces the invariants from
// spec §3: a key is pending XOR confirmed, and a target is claimed by at
// most one confirmed entry.
type Table struct {
	pending          map[string]*Entry
	confirmedForward map[string]string // source full-sig -> target full-sig
	confirmedInverse map[string]string // target full-sig -> source full-sig
}

// NewTable builds an empty Table.
func NewTable() *Table {
	return &Table{
		pending:          make(map[string]*Entry),
		confirmedForward: make(map[string]string),
		confirmedInverse: make(map[string]string),
	}
}

// ConfirmedTarget reports the target a source is confirmed to, if any.
func (t *Table) ConfirmedTarget(source string) (string, bool) {
	target, ok := t.confirmedForward[source]
	return target, ok
}

// ConfirmedSource reports the source a target is confirmed to, if any.
func (t *Table) ConfirmedSource(target string) (string, bool) {
	source, ok := t.confirmedInverse[target]
	return source, ok
}

// PendingEntry returns the pending entry for a source, if one exists.
func (t *Table) PendingEntry(source string) (*Entry, bool) {
	e, ok := t.pending[source]
	return e, ok
}

// Pending exposes the live pending map for read-only iteration by passes.
func (t *Table) Pending() map[string]*Entry { return t.pending }

// ConfirmedForward exposes the live confirmed-forward map for read-only
// iteration.
func (t *Table) ConfirmedForward() map[string]string { return t.confirmedForward }

func (t *Table) getOrCreate(source string) *Entry {
	e, ok := t.pending[source]
	if !ok {
		e = newEntry(source)
		t.pending[source] = e
	}
	return e
}

// Vote records weight for (source, target), applying the supplied
// compatibility filter before accumulation (spec §4.1 vote_*). Returns
// whether the vote was accepted:
//   - if source is already confirmed, accepted iff the existing target
//     equals target;
//   - if target is already confirmed to a different source, rejected;
//   - if filter rejects the pairing, rejected;
//   - otherwise weight is added and true is returned.
//
// filter may be nil (classes have no per-vote filter, spec §4.2). It
// receives the pending entry (for its owner-lock) and the candidate
// target, and returns whether the vote should be accepted.
func (t *Table) Vote(source, target string, weight int, filter func(entry *Entry, target string) bool) bool {
	if existing, ok := t.confirmedForward[source]; ok {
		return existing == target
	}
	if _, ok := t.confirmedInverse[target]; ok {
		return false
	}
	entry := t.getOrCreate(source)
	if filter != nil && !filter(entry, target) {
		return false
	}
	entry.AddVote(target, weight)
	return true
}

// ConfirmDirect confirms source->target immediately, bypassing voting
// (spec §4.3, anchor pass). Returns false if target is already claimed by
// a different source; idempotent if source is already confirmed to
// target.
func (t *Table) ConfirmDirect(source, target string) bool {
	if existingSrc, ok := t.confirmedInverse[target]; ok {
		return existingSrc == source
	}
	if existingTgt, ok := t.confirmedForward[source]; ok {
		return existingTgt == target
	}
	delete(t.pending, source)
	t.confirmedForward[source] = target
	t.confirmedInverse[target] = source
	return true
}

// Confirm promotes the pending entry for source — which must have a
// chosen (first-place) target that is not already claimed — into
// confirmed state, then purges that target from every other pending
// entry's ledger (spec §3, §4.1 confirm_*). It returns the confirmed
// target.
//
// Confirming an entry with no chosen target, or whose target is already
// claimed by a different source, is a precondition violation (spec §7):
// it panics rather than returning an error, since it indicates a
// programming mistake in the caller (normally the Vote Collector pass),
// not a data problem.
func (t *Table) Confirm(source string) string {
	entry, ok := t.pending[source]
	if !ok {
		panic(fmt.Sprintf("match: Confirm called on unknown pending source %q", source))
	}
	target := entry.FirstTarget()
	if target == "" {
		panic(fmt.Sprintf("match: Confirm called on entry %q with no chosen target", source))
	}
	if existingSrc, ok := t.confirmedInverse[target]; ok && existingSrc != source {
		panic(fmt.Sprintf("match: Confirm: target %q already claimed by %q, cannot also confirm %q", target, existingSrc, source))
	}

	delete(t.pending, source)
	t.confirmedForward[source] = target
	t.confirmedInverse[target] = source

	for _, other := range t.pending {
		if other.Votes(target) > 0 {
			other.RemoveVote(target)
		}
	}
	return target
}

// ApplyOwnerLock sets the owner-lock on the pending entry for source (if
// it exists) and purges every candidate target whose owner, per ownerOf,
// is not lockedOwner (spec §3, owner-lock propagation).
func (t *Table) ApplyOwnerLock(source, lockedOwner string, ownerOf func(target string) (string, bool)) {
	entry, ok := t.pending[source]
	if !ok {
		return
	}
	entry.SetOwnerLock(lockedOwner)
	for _, target := range entry.Targets() {
		owner, ok := ownerOf(target)
		if !ok || owner != lockedOwner {
			entry.RemoveVote(target)
		}
	}
}
