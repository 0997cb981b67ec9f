// Package rank implements the Hybrid Ranker (spec §4.9): a TF-IDF token
// index plus a 33-dimension KNN feature vector, combined into a single
// acceptance score for late-stage disambiguation of residual unmatched
// methods once iterative voting stalls.
package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/RuneBox/symmap/symbol"
)

// sizeBucket classifies an instruction-count into the named buckets used
// by the SIZE: token (spec §4.9).
func sizeBucket(n int) string {
	switch {
	case n < 10:
		return "TINY"
	case n < 50:
		return "SMALL"
	case n < 200:
		return "MEDIUM"
	case n < 500:
		return "LARGE"
	default:
		return "HUGE"
	}
}

// normalize replaces an obfuscated owner/name pair with the literal
// OBF token, per spec §4.9's normalization rule for MCALL/FACCS tokens.
func normalize(owner, name string, nonObfuscated symbol.NonObfuscatedPredicate) string {
	ownerSimple := owner
	if i := strings.LastIndexByte(owner, '/'); i >= 0 {
		ownerSimple = owner[i+1:]
	}
	if !nonObfuscated(ownerSimple) || !nonObfuscated(name) {
		return "OBF"
	}
	return owner + "#" + name
}

// Tokenize yields the bag of tokens for one method (spec §4.9 tiered
// namespaces). nonObfuscated decides which owners/names normalize to OBF.
func Tokenize(m *symbol.Method, nonObfuscated symbol.NonObfuscatedPredicate) []string {
	var tokens []string

	for _, c := range m.Constants {
		switch {
		case c.Kind == symbol.ConstString:
			tokens = append(tokens, fmt.Sprintf("USTR:%x", stringHash(c.Str)))
		case c.IsNumeric() && c.Num != 0 && c.Num != 1:
			tokens = append(tokens, fmt.Sprintf("UNUM:%v", c.Num))
		}
	}

	tokens = append(tokens, "DESC:"+m.Descriptor)
	tokens = append(tokens, "SIZE:"+sizeBucket(len(m.Instructions)))

	for _, ins := range m.Instructions {
		switch {
		case ins.Kind == symbol.InstrMethod:
			tokens = append(tokens, "MCALL:"+normalize(ins.Owner, ins.Name, nonObfuscated))
		case ins.Kind == symbol.InstrField:
			tokens = append(tokens, "FACCS:"+normalize(ins.Owner, ins.Name, nonObfuscated))
		case ins.Kind == symbol.InstrType:
			simple := ins.Owner
			if i := strings.LastIndexByte(simple, '/'); i >= 0 {
				simple = simple[i+1:]
			}
			if nonObfuscated(simple) {
				tokens = append(tokens, "NEWTYPE:"+ins.Owner)
			}
		}
		tokens = append(tokens, fmt.Sprintf("OPC:%d", ins.Op))
	}

	for i := 0; i+2 < len(m.Instructions); i++ {
		tokens = append(tokens, fmt.Sprintf("NG3:%d_%d_%d", m.Instructions[i].Op, m.Instructions[i+1].Op, m.Instructions[i+2].Op))
	}
	for i := 0; i+3 < len(m.Instructions); i++ {
		tokens = append(tokens, fmt.Sprintf("NG4:%d_%d_%d_%d", m.Instructions[i].Op, m.Instructions[i+1].Op, m.Instructions[i+2].Op, m.Instructions[i+3].Op))
	}

	return tokens
}

// stringHash is a small FNV-1a style hash used only to keep USTR tokens
// bounded in length without leaking full string contents into token keys.
func stringHash(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Candidate is one scored result from a TF-IDF query.
type Candidate struct {
	FullSignature string
	Score         float64
}

// Index is a TF-IDF document index over one archive's methods (spec §4.9).
type Index struct {
	nonObfuscated symbol.NonObfuscatedPredicate
	docs          map[string]map[string]int // fullSig -> token -> count
	docLen        map[string]int
	df            map[string]int
	totalDocs     int
}

// NewIndex builds a TF-IDF index over every method in methods. It does not
// filter them itself; the hybrid pass passes only unconfirmed obfuscated
// targets, the useful late-stage disambiguation targets.
func NewIndex(methods []*symbol.Method, nonObfuscated symbol.NonObfuscatedPredicate) *Index {
	idx := &Index{
		nonObfuscated: nonObfuscated,
		docs:          make(map[string]map[string]int),
		docLen:        make(map[string]int),
		df:            make(map[string]int),
	}
	for _, m := range methods {
		tf := make(map[string]int)
		for _, tok := range Tokenize(m, nonObfuscated) {
			tf[tok]++
		}
		sig := m.FullSignature()
		idx.docs[sig] = tf
		idx.docLen[sig] = len(tf)
		idx.totalDocs++
		for tok := range tf {
			idx.df[tok]++
		}
	}
	return idx
}

func (idx *Index) weight(tok string, count, docLen int) float64 {
	if docLen == 0 {
		return 0
	}
	df := idx.df[tok]
	if df == 0 {
		return 0
	}
	tfw := float64(count) / float64(docLen)
	idf := math.Log(float64(idx.totalDocs) / float64(df))
	if idf < 0 {
		idf = 0
	}
	return tfw * idf
}

func (idx *Index) vector(tf map[string]int, docLen int) map[string]float64 {
	v := make(map[string]float64, len(tf))
	for tok, count := range tf {
		if w := idx.weight(tok, count, docLen); w != 0 {
			v[tok] = w
		}
	}
	return v
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for tok, av := range a {
		na += av * av
		if bv, ok := b[tok]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// TopK returns the k candidates (default 20, spec §4.9) in this index
// most similar to query by TF-IDF cosine similarity, descending by score,
// full-signature ascending on ties.
func (idx *Index) TopK(query *symbol.Method, k int) []Candidate {
	qtf := make(map[string]int)
	for _, tok := range Tokenize(query, idx.nonObfuscated) {
		qtf[tok]++
	}
	qvec := idx.vector(qtf, len(qtf))

	results := make([]Candidate, 0, len(idx.docs))
	for sig, tf := range idx.docs {
		dvec := idx.vector(tf, idx.docLen[sig])
		score := cosine(qvec, dvec)
		if score > 0 {
			results = append(results, Candidate{FullSignature: sig, Score: score})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].FullSignature < results[j].FullSignature
	})
	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results
}
