package engine

// ResultKind is the tag of a PassResult (spec §4.1 pipeline execution /
// §9 polymorphic pass dispatch: "a tagged-sum with inline closures" — the
// variant chosen here over a trait hierarchy since Go favors small
// concrete types over inheritance).
type ResultKind uint8

const (
	Continue ResultKind = iota
	JumpTo
	Done
)

// PassResult is what a Pass hands back to the pipeline controller after
// running.
type PassResult struct {
	Kind        ResultKind
	TargetIndex int
	Predicate   func(*Engine) bool
}

// ContinueResult advances the pipeline to the next pass.
func ContinueResult() PassResult { return PassResult{Kind: Continue} }

// JumpToResult jumps to targetIndex and increments the iteration counter
// iff predicate(engine) holds; otherwise it behaves like Continue.
func JumpToResult(targetIndex int, predicate func(*Engine) bool) PassResult {
	return PassResult{Kind: JumpTo, TargetIndex: targetIndex, Predicate: predicate}
}

// DoneResult halts the pipeline immediately.
func DoneResult() PassResult { return PassResult{Kind: Done} }

// Pass is one stage of the matching pipeline: an anchor, a voting
// heuristic, the vote collector, or the conditional loop operator.
type Pass interface {
	Name() string
	Run(e *Engine) PassResult
}
