package passes

import "github.com/RuneBox/symmap/engine"

// Loop implements the Conditional Loop Operator (spec §4.8): jump back to
// targetIndex iff any confirmation happened during the iteration that
// just completed, otherwise let the pipeline fall through to whatever
// comes next (the hybrid ranker, if configured, or the end of the
// pipeline). The per-iteration change counter is snapshotted and reset
// here, since "the start of each iteration" and "the end of the previous
// one" coincide in this pipeline's linear shape. The iteration-cap safety
// bound itself lives in Engine.Run, not here.
type Loop struct {
	targetIndex int
}

// NewLoop builds the loop-back pass. targetIndex is the pipeline index
// the engine jumps to: normally the first voting pass, right after the
// anchor pass.
func NewLoop(targetIndex int) *Loop {
	return &Loop{targetIndex: targetIndex}
}

func (p *Loop) Name() string { return "loop" }

func (p *Loop) Run(e *engine.Engine) engine.PassResult {
	changed := e.ChangesThisIteration() > 0
	e.ResetChangesThisIteration()

	if !changed {
		return engine.ContinueResult()
	}
	return engine.JumpToResult(p.targetIndex, func(*engine.Engine) bool { return true })
}
