package match

// Vote weight constants (spec §4.1: "fixed"). Any pass may scale within
// this range, but the four named levels themselves never change with
// configuration.
const (
	Weak       = 1
	Medium     = 2
	Strong     = 3
	VeryStrong = 5
)
