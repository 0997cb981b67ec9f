package passes

import (
	"testing"

	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestLoopJumpsBackWhenChangesOccurred(t *testing.T) {
	require := require.New(t)

	e := buildEngine(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil))
	e.ConfirmDirectClass("A", "B")

	result := NewLoop(1).Run(e)
	require.Equal(engine.JumpTo, result.Kind)
	require.Equal(1, result.TargetIndex)
	require.Equal(0, e.ChangesThisIteration(), "the per-iteration counter is reset as part of the decision")
}

func TestLoopFallsThroughWhenNoChangesOccurred(t *testing.T) {
	require := require.New(t)

	e := buildEngine(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil))

	result := NewLoop(1).Run(e)
	require.Equal(engine.Continue, result.Kind)
}
