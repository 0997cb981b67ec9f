package engine

// Result is the frozen three-way mapping returned after the pipeline
// converges or the iteration cap is reached (spec §4.10, Result Bundle).
// It is otherwise opaque: the report writer is the only consumer.
type Result struct {
	Classes map[string]string
	Methods map[string]string
	Fields  map[string]string

	// Converged is false only when the 50-iteration safety bound was
	// reached while changes were still occurring (spec §7, "convergence
	// failure ... return partial result bundle").
	Converged  bool
	Iterations int
}

func (e *Engine) buildResult(converged bool) *Result {
	return &Result{
		Classes:    copyMap(e.Classes.ConfirmedForward()),
		Methods:    copyMap(e.Methods.ConfirmedForward()),
		Fields:     copyMap(e.Fields.ConfirmedForward()),
		Converged:  converged,
		Iterations: e.iterations,
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
