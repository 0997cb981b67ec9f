package passes

import (
	"testing"

	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestHybridAcceptsDistinctiveResidualMatch(t *testing.T) {
	require := require.New(t)

	nonObfuscated := symbol.PrefixPredicate(nil)
	str := symbol.String("a very distinctive literal nobody else has")

	classA := symbol.NewClass("a", "", nil, 0, nonObfuscated)
	ma := symbol.NewMethod("a", "m", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	classA.Methods = []*symbol.Method{ma}

	classB := symbol.NewClass("b", "", nil, 0, nonObfuscated)
	mb := symbol.NewMethod("b", "n", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	decoy := symbol.NewMethod("b", "o", "()V", 0, nil, nil, nil, nonObfuscated)
	classB.Methods = []*symbol.Method{mb, decoy}

	envA := symbol.NewEnvironment([]*symbol.Class{classA})
	envB := symbol.NewEnvironment([]*symbol.Class{classB})
	e := buildEngine(envA, envB)
	e.Config.HybridTopK = 5
	e.Config.HybridAcceptScore = 0.1
	e.Config.HybridAcceptGap = 0.01

	e.VoteMethod(ma.FullSignature(), mb.FullSignature(), 1) // create a pending entry to disambiguate

	NewHybrid(nonObfuscated).Run(e)

	tgt, ok := e.Methods.ConfirmedTarget(ma.FullSignature())
	require.True(ok)
	require.Equal(mb.FullSignature(), tgt)
}

func TestHybridNoOpWhenNoObfuscatedTargetsRemain(t *testing.T) {
	require := require.New(t)

	e := buildEngine(symbol.NewEnvironment(nil), symbol.NewEnvironment(nil))
	result := NewHybrid(symbol.PrefixPredicate(nil)).Run(e)
	require.Equal(engine.Continue, result.Kind)
}
