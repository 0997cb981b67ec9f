package engine

import (
	"testing"

	"github.com/RuneBox/symmap/config"
	"github.com/RuneBox/symmap/symbol"
	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

// fakePass confirms one class per invocation (up to max times) and always
// jumps back to itself — used to exercise the iteration-cap safety bound
// without depending on package passes (which imports engine).
type fakePass struct {
	calls int
	max   int
}

func (p *fakePass) Name() string { return "fake" }

func (p *fakePass) Run(e *Engine) PassResult {
	p.calls++
	if p.calls <= p.max {
		e.ConfirmDirectClass(classSig(p.calls), targetSig(p.calls))
	}
	return JumpToResult(0, func(*Engine) bool { return true })
}

func classSig(i int) string  { return "A" + string(rune('a'+i)) }
func targetSig(i int) string { return "B" + string(rune('a'+i)) }

func TestRunHaltsAtIterationCapWithoutConverging(t *testing.T) {
	require := require.New(t)

	cfg := config.Default()
	cfg.MaxIterations = 5
	e := New(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil), cfg, log.NewNoOpLogger(), nil)
	e.AddPass(&fakePass{max: 1000})

	result := e.Run()
	require.False(result.Converged)
	require.Equal(5, result.Iterations)
}

func TestRunConvergesWhenNoPassLoopsFurther(t *testing.T) {
	require := require.New(t)

	cfg := config.Default()
	e := New(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil), cfg, log.NewNoOpLogger(), nil)
	e.AddPass(&onceThenDonePass{})

	result := e.Run()
	require.True(result.Converged)
}

type onceThenDonePass struct{ ran bool }

func (p *onceThenDonePass) Name() string { return "once" }
func (p *onceThenDonePass) Run(e *Engine) PassResult {
	return DoneResult()
}
