package rank

import (
	"math"
	"sort"

	"github.com/RuneBox/symmap/symbol"
)

// Dimensions is the fixed size of a KNN feature vector (spec §4.9).
const Dimensions = 33

// namedOpcodes is the 15 opcode buckets whose occurrence proportion forms
// dimensions 15-29 of the feature vector.
var namedOpcodes = [15]symbol.Opcode{
	symbol.OpConstLoad, symbol.OpLoad, symbol.OpStore, symbol.OpArrayLoad,
	symbol.OpArrayStore, symbol.OpInvokeVirtual, symbol.OpInvokeSpecial,
	symbol.OpInvokeStatic, symbol.OpInvokeInterface, symbol.OpGetField,
	symbol.OpPutField, symbol.OpGetStatic, symbol.OpPutStatic,
	symbol.OpBranch, symbol.OpNew,
}

// weights assigns an importance weight to each dimension (spec §4.9:
// hashes 2.5-3.5, structural counters 1.5-2.5, common opcodes 0.5-1.2).
// Boolean flags and parameter ratios use a middling 1.0.
var weights = buildWeights()

func buildWeights() [Dimensions]float64 {
	var w [Dimensions]float64
	// 0-8: structural counters.
	structuralBase := []float64{2.5, 2.1, 1.8, 1.9, 1.7, 2.3, 1.6, 1.5, 2.0}
	copy(w[0:9], structuralBase)
	// 9-12: boolean flags.
	for i := 9; i < 13; i++ {
		w[i] = 1.0
	}
	// 13-14: hash-based summaries.
	w[13] = 3.5
	w[14] = 2.8
	// 15-29: named-opcode proportions.
	opcodeBase := []float64{0.5, 0.6, 0.6, 0.7, 0.7, 1.0, 0.9, 0.95, 1.1, 0.8, 0.8, 0.85, 0.85, 1.2, 0.75}
	copy(w[15:30], opcodeBase)
	// 30-32: parameter-type ratios.
	w[30], w[31], w[32] = 1.0, 1.0, 1.0
	return w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// hashToUnit sorts the input values, combines them into one polynomial
// rolling hash (acc*31 + v), and folds it into [0,1] — the "hash-based summary" feature kind (spec
// §4.9: variable-length features sorted then joined then hashed).
func hashToUnit(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	var acc uint64
	for _, v := range sorted {
		acc = acc*31 + uint64(v)
	}
	return float64(acc%100003) / 100003.0
}

// FeatureVector computes the fixed 33-dimension KNN feature vector for a
// method (spec §4.9).
func FeatureVector(m *symbol.Method) [Dimensions]float64 {
	var v [Dimensions]float64

	instrCount := len(m.Instructions)
	params, ret := symbol.ParamTypes(m.Descriptor)

	var branches, invokes, fieldAccess int
	opcodeHist := make(map[symbol.Opcode]int)
	var exceptionHashes, opHashes []int
	for _, ins := range m.Instructions {
		opcodeHist[ins.Op]++
		opHashes = append(opHashes, int(ins.Op))
		if ins.Op == symbol.OpBranch || ins.Op == symbol.OpSwitch {
			branches++
		}
		if ins.Op.IsInvoke() {
			invokes++
		}
		if ins.Op.IsFieldAccess() {
			fieldAccess++
		}
	}
	for i, exc := range m.Exceptions {
		exceptionHashes = append(exceptionHashes, i+len(exc))
	}

	// 0-8: structural counters, normalized into [0,1].
	v[0] = clamp01(float64(instrCount) / 500)
	v[1] = clamp01(float64(len(params)) / 10)
	v[2] = clamp01(float64(len(m.Constants)) / 20)
	v[3] = ratio(branches, instrCount)
	v[4] = ratio(invokes, instrCount)
	v[5] = ratio(fieldAccess, instrCount)
	v[6] = clamp01(float64(len(opcodeHist)) / 40)
	v[7] = clamp01(float64(len(m.Exceptions)) / 5)
	v[8] = clamp01(float64(len(m.Descriptor)) / 60)

	// 9-12: boolean flags.
	v[9] = boolDim(m.IsStatic())
	v[10] = boolDim(m.IsConstructorLike())
	v[11] = boolDim(len(m.Exceptions) > 0)
	v[12] = boolDim(ret == "V")

	// 13-14: hash-based summaries.
	v[13] = hashToUnit(exceptionHashes)
	v[14] = hashToUnit(opHashes)

	// 15-29: named-opcode histogram proportions.
	for i, op := range namedOpcodes {
		v[15+i] = ratio(opcodeHist[op], instrCount)
	}

	// 30-32: parameter-type ratios, denominator clamped to >= 1.
	denom := len(params)
	if denom < 1 {
		denom = 1
	}
	var primitive, object, array int
	for _, p := range params {
		switch {
		case symbol.IsArray(p):
			array++
		case symbol.IsPrimitive(p):
			primitive++
		default:
			object++
		}
	}
	v[30] = float64(primitive) / float64(denom)
	v[31] = float64(object) / float64(denom)
	v[32] = float64(array) / float64(denom)

	return v
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return clamp01(float64(n) / float64(d))
}

func boolDim(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Similarity is the weighted cosine similarity between two feature
// vectors (spec §4.9).
func Similarity(a, b [Dimensions]float64) float64 {
	var dot, na, nb float64
	for i := 0; i < Dimensions; i++ {
		wa := a[i] * weights[i]
		wb := b[i] * weights[i]
		dot += wa * wb
		na += wa * wa
		nb += wb * wb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
