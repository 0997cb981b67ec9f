package config

// defaultPrefixes is a starting set of "meaningful" simple-name prefixes
// used to recognize non-obfuscated symbols (spec §9 / glossary). Real
// deployments should override this via WithNonObfuscatedPrefixes to match
// the target corpus's naming convention.
var defaultPrefixes = []string{"class", "method", "field", "client", "server", "packet"}

// Default returns the baseline configuration: the promotion criteria and
// thresholds given as spec.md defaults verbatim.
func Default() Config {
	return Config{
		MinVotes:     3,
		MinGap:       2,
		BatchPercent: 0.10,
		ClassFloor:   5,
		MethodFloor:  10,
		FieldFloor:   5,

		MaxIterations: 50,

		ConstStringMinLength:      5,
		ConstStringStrongLength:   10,
		ConstStringVeryLongLength: 20,
		ConstIntMinMagnitude:      3,
		ConstIntStrongMagnitude:   1000,

		MemberCountRatioThreshold: 0.7,
		MethodJaccardStrong:       0.5,
		MethodJaccardWeak:         0.3,
		FieldJaccardWeak:          0.5,

		NonObfuscatedPrefixes: defaultPrefixes,

		HybridRankerEnabled: true,
		HybridTopK:          20,
		HybridCombinerTFIDF: 0.4,
		HybridCombinerKNN:   0.6,
		HybridAcceptScore:   0.7,
		HybridAcceptGap:     0.15,
	}
}

// Strict tightens the promotion criteria to favor precision over
// coverage: fewer, higher-confidence confirmations, and the hybrid
// ranker's late-stage guesses disabled entirely.
func Strict() Config {
	c := Default()
	c.MinVotes = 4
	c.MinGap = 3
	c.BatchPercent = 0.05
	c.HybridRankerEnabled = false
	return c
}
