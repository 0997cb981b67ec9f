package symbol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessFlagPredicates(t *testing.T) {
	require := require.New(t)

	a := AccPublic | AccStatic | AccFinal
	require.True(a.IsStatic())
	require.False(a.IsInterface())
	require.False(a.IsEnum())
	require.False(a.IsAbstract())

	iface := AccInterface | AccAbstract
	require.True(iface.IsInterface())
	require.True(iface.IsAbstract())
	require.False(iface.IsStatic())

	enum := AccEnum | AccFinal
	require.True(enum.IsEnum())
}
