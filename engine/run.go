package engine

import (
	"time"

	"go.uber.org/zap"
)

// Run executes the pipeline to a fixed point (spec §4.1 run()): each pass
// runs in order, consuming its PassResult (Continue/JumpTo/Done), until
// either a pass returns Done, the pipeline runs off the end (no pass
// wants to loop further), or the 50-iteration safety bound is hit while
// changes are still occurring.
//
// The iteration cap is a hard stop, never an error (spec §7): on cap-out,
// Run logs a warning and returns a partial Result with Converged=false.
func (e *Engine) Run() *Result {
	i := 0
	for i < len(e.passes) {
		if e.iterations >= e.Config.MaxIterations {
			e.Log.Warn("matching pipeline hit the iteration cap before converging",
				zap.Int("maxIterations", e.Config.MaxIterations),
				zap.Int("changesThisIteration", e.changesThisIteration),
			)
			return e.buildResult(false)
		}

		pass := e.passes[i]
		start := time.Now()
		result := pass.Run(e)
		e.Metrics.PassDuration.WithLabelValues(pass.Name()).Observe(time.Since(start).Seconds())

		switch result.Kind {
		case Continue:
			i++
		case JumpTo:
			if result.Predicate(e) {
				i = result.TargetIndex
				e.iterations++
				e.Metrics.Iterations.Set(float64(e.iterations))
			} else {
				i++
			}
		case Done:
			return e.buildResult(true)
		}
	}
	return e.buildResult(true)
}
