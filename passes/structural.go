package passes

import (
	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/match"
	"github.com/RuneBox/symmap/symbol"
)

// Structural implements spec §4.6: for every unmatched obfuscated class
// pair in the default package, sum a fixed set of shape signals
// (superclass match, interface matches, member-count similarity,
// method/field descriptor-set Jaccard similarity) and cast that total as
// one vote when it is positive.
type Structural struct{}

func NewStructural() *Structural { return &Structural{} }

func (p *Structural) Name() string { return "structural" }

func (p *Structural) Run(e *engine.Engine) engine.PassResult {
	for sourceName, classA := range e.EnvA.Classes {
		if !classA.Obfuscated() || !classA.IsInDefaultPackage() {
			continue
		}
		if _, ok := e.Classes.ConfirmedTarget(sourceName); ok {
			continue
		}
		for targetName, classB := range e.EnvB.Classes {
			if !classB.Obfuscated() || !classB.IsInDefaultPackage() {
				continue
			}
			if _, ok := e.Classes.ConfirmedSource(targetName); ok {
				continue
			}
			weight := shapeWeight(e, classA, classB)
			if weight > 0 {
				e.VoteClass(sourceName, targetName, weight)
			}
		}
	}
	return engine.ContinueResult()
}

// shapeWeight sums the spec §4.6 structural signals between one candidate
// pair.
func shapeWeight(e *engine.Engine, classA, classB *symbol.Class) int {
	cfg := e.Config
	weight := 0

	if classA.Super != "" && classB.Super != "" {
		if tgt, ok := e.Classes.ConfirmedTarget(classA.Super); ok && tgt == classB.Super {
			weight += match.Strong
		}
	}

	for _, iface := range classA.Interfaces {
		tgt, ok := e.Classes.ConfirmedTarget(iface)
		if !ok {
			continue
		}
		for _, candidate := range classB.Interfaces {
			if candidate == tgt {
				weight += match.Medium
				break
			}
		}
	}

	if ratioClose(len(classA.Methods), len(classB.Methods), cfg.MemberCountRatioThreshold) &&
		ratioClose(len(classA.Fields), len(classB.Fields), cfg.MemberCountRatioThreshold) {
		weight += match.Weak
	}

	methodJ := jaccardStrings(descriptorSet(classA.Methods, func(m *symbol.Method) string { return m.Descriptor }),
		descriptorSet(classB.Methods, func(m *symbol.Method) string { return m.Descriptor }))
	switch {
	case methodJ > cfg.MethodJaccardStrong:
		weight += match.Medium
	case methodJ > cfg.MethodJaccardWeak:
		weight += match.Weak
	}

	fieldJ := jaccardStrings(descriptorSet(classA.Fields, func(f *symbol.Field) string { return f.Descriptor }),
		descriptorSet(classB.Fields, func(f *symbol.Field) string { return f.Descriptor }))
	if fieldJ > cfg.FieldJaccardWeak {
		weight += match.Weak
	}

	return weight
}

func descriptorSet[T any](items []T, descOf func(T) string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[descOf(it)] = struct{}{}
	}
	return set
}

// jaccardStrings computes set similarity over descriptor strings (spec
// §4.6's method-/field-descriptor-set Jaccard). Two empty sets are
// defined as maximally similar (1), which avoids a zero-member
// divide-by-zero (spec §8).
func jaccardStrings(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	union := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		union[k] = struct{}{}
	}
	inter := 0
	for k := range b {
		if _, ok := a[k]; ok {
			inter++
		}
		union[k] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(inter) / float64(len(union))
}

func ratioClose(a, b int, threshold float64) bool {
	if a == 0 && b == 0 {
		return true
	}
	if a == 0 || b == 0 {
		return false
	}
	lo, hi := float64(a), float64(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo/hi >= threshold
}
