package match

import "sort"

// Entry is the per-pending-source vote ledger described in spec §3
// ("match entry"): a source symbol's accumulated votes toward each
// candidate target, plus the first/second place totals used to compute
// the vote gap (spec glossary). Runner-up identity is never tracked,
// only its vote count — spec §3 explicitly says this isn't needed.
type Entry struct {
	Source string

	ledger      map[string]int
	firstTarget string
	firstVotes  int
	secondVotes int
	ownerLock   string
}

func newEntry(source string) *Entry {
	return &Entry{Source: source, ledger: make(map[string]int)}
}

// AddVote adds weight to the ledger entry for target and recomputes
// first/second place.
func (e *Entry) AddVote(target string, weight int) {
	e.ledger[target] += weight
	e.recompute()
}

// RemoveVote zeroes the ledger entry for target entirely and recomputes
// first/second place from scratch (spec §4.2, remove_vote).
func (e *Entry) RemoveVote(target string) {
	delete(e.ledger, target)
	e.recompute()
}

// Votes returns the accumulated weight for one candidate target.
func (e *Entry) Votes(target string) int { return e.ledger[target] }

// Targets returns a snapshot of every candidate target currently carrying
// votes, safe to range over while mutating the entry.
func (e *Entry) Targets() []string {
	out := make([]string, 0, len(e.ledger))
	for t := range e.ledger {
		out = append(out, t)
	}
	return out
}

// recompute rebuilds first/second place by sorting remaining ledger
// entries descending by vote count, source-key (here: target-key)
// ascending on ties — the same deterministic tie-break used for
// collector batch ordering (spec §5).
func (e *Entry) recompute() {
	keys := make([]string, 0, len(e.ledger))
	for k := range e.ledger {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.firstTarget, e.firstVotes, e.secondVotes = "", 0, 0
	for _, k := range keys {
		v := e.ledger[k]
		switch {
		case v > e.firstVotes:
			e.secondVotes = e.firstVotes
			e.firstVotes = v
			e.firstTarget = k
		case v > e.secondVotes:
			e.secondVotes = v
		}
	}
}

// FirstTarget is the current leading candidate, or "" if the ledger is
// empty.
func (e *Entry) FirstTarget() string { return e.firstTarget }

// FirstVotes is the leading candidate's accumulated weight.
func (e *Entry) FirstVotes() int { return e.firstVotes }

// SecondVotes is the runner-up's accumulated weight (identity untracked).
func (e *Entry) SecondVotes() int { return e.secondVotes }

// Gap is first-place votes minus second-place votes (spec glossary: vote
// gap).
func (e *Entry) Gap() int { return e.firstVotes - e.secondVotes }

// OwnerLock is the confirmed owner class name this entry is restricted
// to, or "" if unset (classes never set this; methods/fields only).
func (e *Entry) OwnerLock() string { return e.ownerLock }

// SetOwnerLock records the owner-lock restriction.
func (e *Entry) SetOwnerLock(owner string) { e.ownerLock = owner }
