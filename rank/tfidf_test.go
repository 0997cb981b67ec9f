package rank

import (
	"testing"

	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestTokenizeEmptyMethodEmitsOnlyDescAndSize(t *testing.T) {
	require := require.New(t)

	m := symbol.NewMethod("A", "a", "()V", 0, nil, nil, nil, symbol.PrefixPredicate(nil))
	tokens := Tokenize(m, symbol.PrefixPredicate(nil))
	require.ElementsMatch([]string{"DESC:()V", "SIZE:TINY"}, tokens)
}

func TestCosineZeroWhenEitherVectorEmpty(t *testing.T) {
	require := require.New(t)
	require.Equal(0.0, cosine(map[string]float64{}, map[string]float64{"a": 1}))
	require.Equal(0.0, cosine(map[string]float64{"a": 1}, map[string]float64{}))
}

func TestIndexTopKFindsExactMatch(t *testing.T) {
	require := require.New(t)

	nonObfuscated := symbol.PrefixPredicate(nil)
	target := symbol.NewMethod("B", "x", "()V", 0, nil, nil, []symbol.Const{symbol.String("distinctive token here")}, nonObfuscated)
	decoy := symbol.NewMethod("B", "y", "()V", 0, nil, nil, nil, nonObfuscated)

	idx := NewIndex([]*symbol.Method{target, decoy}, nonObfuscated)

	query := symbol.NewMethod("A", "a", "()V", 0, nil, nil, []symbol.Const{symbol.String("distinctive token here")}, nonObfuscated)
	top := idx.TopK(query, 5)
	require.NotEmpty(top)
	require.Equal(target.FullSignature(), top[0].FullSignature)
}
