package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.New(t).NoError(Default().Validate())
}

func TestStrictConfigValidates(t *testing.T) {
	require.New(t).NoError(Strict().Validate())
}

func TestValidateRejectsBadFields(t *testing.T) {
	require := require.New(t)

	c := Default()
	c.MinVotes = 0
	require.ErrorIs(c.Validate(), ErrInvalidMinVotes)

	c = Default()
	c.MinGap = -1
	require.ErrorIs(c.Validate(), ErrInvalidMinGap)

	c = Default()
	c.BatchPercent = 0
	require.ErrorIs(c.Validate(), ErrInvalidBatchPercent)

	c = Default()
	c.BatchPercent = 1.5
	require.ErrorIs(c.Validate(), ErrInvalidBatchPercent)

	c = Default()
	c.MaxIterations = 0
	require.ErrorIs(c.Validate(), ErrInvalidMaxIterations)

	c = Default()
	c.HybridCombinerTFIDF, c.HybridCombinerKNN = 0, 0
	require.ErrorIs(c.Validate(), ErrInvalidCombinerWeights)
}

func TestBuilderFromUnknownPreset(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().FromPreset("nonexistent").Build()
	require.ErrorIs(err, ErrUnknownPreset)
}

func TestBuilderOverridesApply(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().
		WithMinVotes(7).
		WithMinGap(4).
		WithBatchPercent(0.2).
		WithMaxIterations(10).
		WithNonObfuscatedPrefixes([]string{"pkt"}).
		WithHybridRanker(false).
		Build()
	require.NoError(err)
	require.Equal(7, cfg.MinVotes)
	require.Equal(4, cfg.MinGap)
	require.Equal(0.2, cfg.BatchPercent)
	require.Equal(10, cfg.MaxIterations)
	require.Equal([]string{"pkt"}, cfg.NonObfuscatedPrefixes)
	require.False(cfg.HybridRankerEnabled)
}
