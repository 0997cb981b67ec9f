// Package config collects every tunable the matching engine and its
// passes consult, following the teacher's config.Builder/presets pattern
// (luxfi-consensus config.NewBuilder()...FromPreset(...)) rather than a
// bag of free-floating constants scattered across packages.
package config

import "time"

// Config holds every tunable named in the matching-engine specification.
// Vote weight constants (WEAK/MEDIUM/STRONG/VERY_STRONG) are intentionally
// NOT here: spec §4.1 calls them fixed, so they live as exported constants
// in package match instead of a configuration surface.
type Config struct {
	// Promotion criteria (spec §4.1).
	MinVotes     int
	MinGap       int
	BatchPercent float64
	ClassFloor   int
	MethodFloor  int
	FieldFloor   int

	// Pipeline safety bound (spec §4.1).
	MaxIterations int

	// Unique-constant significance thresholds (spec §4.4).
	ConstStringMinLength      int
	ConstStringStrongLength   int // length > this => STRONG
	ConstStringVeryLongLength int // length > this => VERY_STRONG
	ConstIntMinMagnitude      int64
	ConstIntStrongMagnitude   int64 // |value| > this => STRONG

	// Structural-pass thresholds (spec §4.6).
	MemberCountRatioThreshold float64
	MethodJaccardStrong       float64
	MethodJaccardWeak         float64
	FieldJaccardWeak          float64

	// Obfuscation-detection predicate inputs (spec §9 / glossary): a
	// simple name is non-obfuscated iff it starts with one of these.
	NonObfuscatedPrefixes []string

	// Hybrid ranker (spec §4.9).
	HybridRankerEnabled bool
	HybridTopK          int
	HybridCombinerTFIDF float64
	HybridCombinerKNN   float64
	HybridAcceptScore   float64
	HybridAcceptGap     float64

	// Time budget hint surfaced to callers (spec §5: "must be prepared to
	// run for minutes on large archives"); not enforced internally, the
	// core has no cancellation per spec §5.
	ExpectedMaxRuntime time.Duration
}

// Validate reports the first configuration error found, if any.
func (c Config) Validate() error {
	switch {
	case c.MinVotes < 1:
		return ErrInvalidMinVotes
	case c.MinGap < 0:
		return ErrInvalidMinGap
	case c.BatchPercent <= 0 || c.BatchPercent > 1:
		return ErrInvalidBatchPercent
	case c.MaxIterations < 1:
		return ErrInvalidMaxIterations
	case c.HybridCombinerTFIDF+c.HybridCombinerKNN == 0:
		return ErrInvalidCombinerWeights
	}
	return nil
}
