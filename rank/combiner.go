package rank

// Combine blends a TF-IDF cosine score and a KNN weighted-cosine score
// into a single acceptance score (spec §4.9 default: combined =
// 0.4*TFIDF + 0.6*KNN). The weights are injected rather than hardcoded
// so a config preset can retune the blend.
func Combine(tfidf, knn, tfidfWeight, knnWeight float64) float64 {
	return tfidfWeight*tfidf + knnWeight*knn
}

// Accept reports whether a combined top candidate should be accepted,
// given the runner-up's combined score (spec §4.9: combined >= 0.7 and
// first-second gap >= 0.15). acceptScore/acceptGap are injected so the
// thresholds stay configuration-driven rather than hardcoded twice.
func Accept(firstCombined, secondCombined, acceptScore, acceptGap float64) bool {
	return firstCombined >= acceptScore && (firstCombined-secondCombined) >= acceptGap
}
