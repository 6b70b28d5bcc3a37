package stat

import (
	"github.com/revelaction/mailshare/classify"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumRelevant           int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
	Labels                map[string]int
	ScoreMean             float64

	// NumSignals counts the sentences where each signal fired.
	NumVerbBeforePronoun int
	NumPastParticiple    int
	NumQuestion          int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, Labels: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds a report to the statistics. It can be called once per
// input file.
func (h *Handler) Aggregate(report classify.Report) {
	h.stats.NumSentences += report.Total

	scoreSum := h.stats.ScoreMean * float64(h.stats.NumRelevant)
	for _, res := range report.Results {
		h.stats.NumRelevant++
		h.stats.NumTokens += res.Length
		h.stats.TokensPerSentenceDis[res.Length]++
		h.stats.Labels[res.Label]++
		scoreSum += res.Score

		h.stats.NumVerbBeforePronoun += res.Signals.VerbBeforePronoun
		h.stats.NumPastParticiple += res.Signals.Tense
		h.stats.NumQuestion += res.Signals.Punct
	}

	if h.stats.NumRelevant == 0 {
		return
	}

	h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumRelevant
	h.stats.ScoreMean = scoreSum / float64(h.stats.NumRelevant)
}
