package config

import "errors"

var (
	ErrInvalidMinVotes        = errors.New("min votes must be >= 1")
	ErrInvalidMinGap          = errors.New("min gap must be >= 0")
	ErrInvalidBatchPercent    = errors.New("batch percent must be in (0, 1]")
	ErrInvalidMaxIterations   = errors.New("max iterations must be >= 1")
	ErrInvalidCombinerWeights = errors.New("hybrid combiner weights must not both be zero")
	ErrUnknownPreset          = errors.New("unknown config preset")
)
