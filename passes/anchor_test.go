package passes

import (
	"testing"

	"github.com/RuneBox/symmap/config"
	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/symbol"
	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func buildEngine(envA, envB *symbol.Environment) *engine.Engine {
	return engine.New(envA, envB, config.Default(), log.NewNoOpLogger(), nil)
}

func TestAnchorConfirmsNonObfuscatedClassesAndMembers(t *testing.T) {
	require := require.New(t)

	nonObfuscated := symbol.PrefixPredicate([]string{"class", "method", "field"})

	classA := symbol.NewClass("com/example/classFoo", "", nil, 0, nonObfuscated)
	ma := symbol.NewMethod("com/example/classFoo", "methodRun", "()V", 0, nil, nil, nil, nonObfuscated)
	fa := symbol.NewField("com/example/classFoo", "fieldX", "I", 0, nil, nonObfuscated)
	classA.Methods = []*symbol.Method{ma}
	classA.Fields = []*symbol.Field{fa}

	classB := symbol.NewClass("com/example/classFoo", "", nil, 0, nonObfuscated)
	mb := symbol.NewMethod("com/example/classFoo", "methodRun", "()V", 0, nil, nil, nil, nonObfuscated)
	fb := symbol.NewField("com/example/classFoo", "fieldX", "I", 0, nil, nonObfuscated)
	classB.Methods = []*symbol.Method{mb}
	classB.Fields = []*symbol.Field{fb}

	envA := symbol.NewEnvironment([]*symbol.Class{classA})
	envB := symbol.NewEnvironment([]*symbol.Class{classB})
	e := buildEngine(envA, envB)

	result := NewAnchor().Run(e)
	require.Equal(engine.Continue, result.Kind)

	tgt, ok := e.Classes.ConfirmedTarget("com/example/classFoo")
	require.True(ok)
	require.Equal("com/example/classFoo", tgt)

	_, ok = e.Methods.ConfirmedTarget(ma.FullSignature())
	require.True(ok)
	_, ok = e.Fields.ConfirmedTarget(fa.FullSignature())
	require.True(ok)
}

func TestAnchorSkipsObfuscatedClasses(t *testing.T) {
	require := require.New(t)

	nonObfuscated := symbol.PrefixPredicate([]string{"class"})
	classA := symbol.NewClass("a", "", nil, 0, nonObfuscated)
	classB := symbol.NewClass("a", "", nil, 0, nonObfuscated)

	envA := symbol.NewEnvironment([]*symbol.Class{classA})
	envB := symbol.NewEnvironment([]*symbol.Class{classB})
	e := buildEngine(envA, envB)

	NewAnchor().Run(e)
	_, ok := e.Classes.ConfirmedTarget("a")
	require.False(ok)
}
