package passes

import (
	"sort"

	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/rank"
	"github.com/RuneBox/symmap/symbol"
	"go.uber.org/zap"
)

// Hybrid implements the Hybrid Ranker (spec §4.9): runs once, after
// iterative voting has stalled, to disambiguate whatever obfuscated
// methods are still pending by combining TF-IDF token similarity with a
// 33-dimension structural KNN similarity.
type Hybrid struct {
	nonObfuscated symbol.NonObfuscatedPredicate
}

// NewHybrid builds the hybrid-ranker pass. It is only ever appended to
// the pipeline when config.HybridRankerEnabled is set.
func NewHybrid(nonObfuscated symbol.NonObfuscatedPredicate) *Hybrid {
	return &Hybrid{nonObfuscated: nonObfuscated}
}

func (p *Hybrid) Name() string { return "hybrid-ranker" }

func (p *Hybrid) Run(e *engine.Engine) engine.PassResult {
	cfg := e.Config

	var targetPool []*symbol.Method
	for sig, m := range e.EnvB.Methods {
		if _, confirmed := e.Methods.ConfirmedSource(sig); !confirmed && m.Obfuscated() {
			targetPool = append(targetPool, m)
		}
	}
	if len(targetPool) == 0 {
		return engine.ContinueResult()
	}
	index := rank.NewIndex(targetPool, p.nonObfuscated)

	targetFeatures := make(map[string][rank.Dimensions]float64, len(targetPool))
	for _, m := range targetPool {
		targetFeatures[m.FullSignature()] = rank.FeatureVector(m)
	}

	pendingSigs := make([]string, 0, len(e.Methods.Pending()))
	for sig := range e.Methods.Pending() {
		pendingSigs = append(pendingSigs, sig)
	}
	sort.Strings(pendingSigs)

	accepted := 0
	for _, sig := range pendingSigs {
		source, ok := e.EnvA.Method(sig)
		if !ok || !source.Obfuscated() {
			continue
		}

		candidates := index.TopK(source, cfg.HybridTopK)
		if len(candidates) == 0 {
			continue
		}
		srcFeatures := rank.FeatureVector(source)

		type scored struct {
			sig      string
			combined float64
		}
		scoredCandidates := make([]scored, 0, len(candidates))
		for _, c := range candidates {
			knnScore := rank.Similarity(srcFeatures, targetFeatures[c.FullSignature])
			combined := rank.Combine(c.Score, knnScore, cfg.HybridCombinerTFIDF, cfg.HybridCombinerKNN)
			scoredCandidates = append(scoredCandidates, scored{c.FullSignature, combined})
		}

		best := scoredCandidates[0]
		secondBest := 0.0
		for _, s := range scoredCandidates[1:] {
			if s.combined > best.combined {
				secondBest = best.combined
				best = s
			} else if s.combined > secondBest {
				secondBest = s.combined
			}
		}

		if rank.Accept(best.combined, secondBest, cfg.HybridAcceptScore, cfg.HybridAcceptGap) {
			if e.ConfirmDirectMethod(sig, best.sig) {
				accepted++
			}
		}
	}

	e.Log.Info("hybrid ranker pass complete", zap.Int("accepted", accepted), zap.Int("candidatePool", len(targetPool)))
	return engine.ContinueResult()
}
