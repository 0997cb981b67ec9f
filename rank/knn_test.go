package rank

import (
	"testing"

	"github.com/RuneBox/symmap/symbol"
	"github.com/stretchr/testify/require"
)

func TestFeatureVectorIsFixedDimension(t *testing.T) {
	require := require.New(t)

	m := symbol.NewMethod("A", "a", "()V", 0, nil, nil, nil, symbol.PrefixPredicate(nil))
	v := FeatureVector(m)
	require.Len(v, Dimensions)
}

func TestSimilarityIdenticalVectorsIsOne(t *testing.T) {
	require := require.New(t)

	m := symbol.NewMethod("A", "a", "(I)V", symbol.AccStatic, nil, nil, nil, symbol.PrefixPredicate(nil))
	v := FeatureVector(m)
	require.InDelta(1.0, Similarity(v, v), 1e-9)
}

func TestSimilarityZeroWhenBothVectorsZero(t *testing.T) {
	require := require.New(t)

	var zero [Dimensions]float64
	require.Equal(0.0, Similarity(zero, zero))
}

func TestFeatureVectorParameterRatiosClampDenominator(t *testing.T) {
	require := require.New(t)

	m := symbol.NewMethod("A", "a", "()V", 0, nil, nil, nil, symbol.PrefixPredicate(nil))
	v := FeatureVector(m)
	require.Equal(0.0, v[30])
	require.Equal(0.0, v[31])
	require.Equal(0.0, v[32])
}
