package passes

import (
	"sort"

	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/match"
	"go.uber.org/zap"
)

// Collector implements spec §4.7: promote a batch of the most confident
// pending entries of one symbol kind to confirmed, subject to the
// minimum-votes and minimum-gap gates, sized to a percentage of the
// pending population but never less than the configured floor, processed
// in deterministic gap-descending / source-key-ascending order so the
// outcome never depends on map iteration order.
type Collector struct {
	kind string
}

// NewClassCollector, NewMethodCollector and NewFieldCollector build the
// three per-kind promotion passes the default pipeline chains together
// (spec §4.7 runs once per symbol kind per iteration).
func NewClassCollector() *Collector  { return &Collector{kind: "class"} }
func NewMethodCollector() *Collector { return &Collector{kind: "method"} }
func NewFieldCollector() *Collector  { return &Collector{kind: "field"} }

func (p *Collector) Name() string { return p.kind + "-collector" }

func (p *Collector) Run(e *engine.Engine) engine.PassResult {
	cfg := e.Config

	var table *match.Table
	var confirm func(source string) string
	var floor int

	switch p.kind {
	case "class":
		table, confirm, floor = e.Classes, e.ConfirmClass, cfg.ClassFloor
	case "method":
		table, confirm, floor = e.Methods, e.ConfirmMethod, cfg.MethodFloor
	case "field":
		table, confirm, floor = e.Fields, e.ConfirmField, cfg.FieldFloor
	}

	pending := table.Pending()
	eligible := make([]*match.Entry, 0, len(pending))
	for _, entry := range pending {
		if entry.FirstTarget() == "" {
			continue
		}
		if entry.FirstVotes() < cfg.MinVotes || entry.Gap() < cfg.MinGap {
			continue
		}
		eligible = append(eligible, entry)
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Gap() != eligible[j].Gap() {
			return eligible[i].Gap() > eligible[j].Gap()
		}
		return eligible[i].Source < eligible[j].Source
	})

	batchSize := int(float64(len(pending)) * cfg.BatchPercent)
	if batchSize < floor {
		batchSize = floor
	}
	if batchSize > len(eligible) {
		batchSize = len(eligible)
	}

	claimedTargets := make(map[string]bool, batchSize)
	promoted := 0
	for _, entry := range eligible {
		if promoted >= batchSize {
			break
		}
		// Confirming an earlier entry in this batch purges its target from
		// every other pending entry's ledger (match.Table.Confirm), which
		// can empty this entry's ledger entirely or drop it below the
		// promotion gate — re-check both before confirming rather than
		// trusting the snapshot taken when eligible was built.
		target := entry.FirstTarget()
		if target == "" {
			continue
		}
		if entry.FirstVotes() < cfg.MinVotes || entry.Gap() < cfg.MinGap {
			continue
		}
		if claimedTargets[target] {
			continue
		}
		if _, alreadyConfirmed := table.ConfirmedSource(target); alreadyConfirmed {
			continue
		}
		confirm(entry.Source)
		claimedTargets[target] = true
		promoted++
	}

	e.Log.Debug("collector pass complete",
		zap.String("kind", p.kind),
		zap.Int("promoted", promoted),
		zap.Int("eligible", len(eligible)),
		zap.Int("pending", len(pending)),
	)
	return engine.ContinueResult()
}
