package passes

import (
	"testing"

	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestUniqueConstantsVotesOnDistinctiveSharedString(t *testing.T) {
	require := require.New(t)

	nonObfuscated := symbol.PrefixPredicate(nil)
	str := symbol.String("Database connection failed")

	classA := symbol.NewClass("A", "", nil, 0, nonObfuscated)
	ma := symbol.NewMethod("A", "foo", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	classA.Methods = []*symbol.Method{ma}

	classB := symbol.NewClass("B", "", nil, 0, nonObfuscated)
	mb := symbol.NewMethod("B", "x", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	classB.Methods = []*symbol.Method{mb}

	envA := symbol.NewEnvironment([]*symbol.Class{classA})
	envB := symbol.NewEnvironment([]*symbol.Class{classB})
	e := buildEngine(envA, envB)

	NewUniqueConstants().Run(e)

	entry, ok := e.Methods.PendingEntry(ma.FullSignature())
	require.True(ok)
	require.Greater(entry.Votes(mb.FullSignature()), 0)
}

func TestUniqueConstantsIgnoresNonUniqueConstants(t *testing.T) {
	require := require.New(t)

	nonObfuscated := symbol.PrefixPredicate(nil)
	str := symbol.String("Shared value")

	classA := symbol.NewClass("A", "", nil, 0, nonObfuscated)
	ma1 := symbol.NewMethod("A", "foo", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	ma2 := symbol.NewMethod("A", "bar", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	classA.Methods = []*symbol.Method{ma1, ma2}

	classB := symbol.NewClass("B", "", nil, 0, nonObfuscated)
	mb := symbol.NewMethod("B", "x", "()V", 0, nil, nil, []symbol.Const{str}, nonObfuscated)
	classB.Methods = []*symbol.Method{mb}

	envA := symbol.NewEnvironment([]*symbol.Class{classA})
	envB := symbol.NewEnvironment([]*symbol.Class{classB})
	e := buildEngine(envA, envB)

	NewUniqueConstants().Run(e)

	_, ok := e.Methods.PendingEntry(ma1.FullSignature())
	require.False(ok, "a constant shared by two A methods is not unique in A, so no vote is cast")
}
