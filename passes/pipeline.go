package passes

import (
	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/symbol"
)

// BuildDefaultPipeline wires the default pass sequence onto e: anchor,
// then the three voting heuristics, then one collector per symbol kind,
// then the loop operator (which jumps back to the first voting pass while
// confirmations keep happening), and finally the hybrid ranker if
// enabled in configuration (spec §4.1's pipeline, §4.9's late-stage
// opt-in disambiguation).
func BuildDefaultPipeline(e *engine.Engine, nonObfuscated symbol.NonObfuscatedPredicate) {
	const firstVotingPassIndex = 1

	e.AddPass(NewAnchor())            // index 0
	e.AddPass(NewUniqueConstants())   // index 1
	e.AddPass(NewUniqueDescriptors()) // index 2
	e.AddPass(NewStructural())        // index 3
	e.AddPass(NewClassCollector())    // index 4
	e.AddPass(NewMethodCollector())   // index 5
	e.AddPass(NewFieldCollector())    // index 6
	e.AddPass(NewLoop(firstVotingPassIndex))

	if e.Config.HybridRankerEnabled {
		e.AddPass(NewHybrid(nonObfuscated))
	}
}
