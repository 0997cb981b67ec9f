package symbol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassIsInDefaultPackage(t *testing.T) {
	require := require.New(t)

	nonObfuscated := PrefixPredicate(nil)
	withPkg := NewClass("com/example/Foo", "", nil, 0, nonObfuscated)
	require.False(withPkg.IsInDefaultPackage())

	noPkg := NewClass("Foo", "", nil, 0, nonObfuscated)
	require.True(noPkg.IsInDefaultPackage())
}

func TestClassFullSignatureIsBinaryName(t *testing.T) {
	require := require.New(t)

	c := NewClass("com/example/Foo", "", nil, 0, PrefixPredicate(nil))
	require.Equal("com/example/Foo", c.FullSignature())
}
