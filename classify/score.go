package classify

import (
	"fmt"
	"strconv"
	"strings"
)

// Threshold separates the two labels.
const Threshold = 0.5

const (
	LabelAsking = "Student wants to know if your email can be shared."
	LabelShared = "Student has shared your email."
)

// Signals are the per sentence inputs of the score, each 0 or 1.
type Signals struct {
	VerbBeforePronoun int `json:"verb_before_pronoun"`
	Tense             int `json:"tense"`
	Punct             int `json:"punct"`
}

// Weights of verb before pronoun, present tense and question mark.
type Weights [3]float64

// DefaultWeights do not need to sum to 1.
var DefaultWeights = Weights{0.5, 0.3, 0.2}

// ParseWeights reads three comma separated numbers.
func ParseWeights(s string) (Weights, error) {
	var w Weights
	parts := strings.Split(s, ",")
	if len(parts) != len(w) {
		return w, fmt.Errorf("weights need %d values, got %d", len(w), len(parts))
	}

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return w, fmt.Errorf("weight %d: %w", i, err)
		}
		w[i] = v
	}

	return w, nil
}

func (w Weights) String() string {
	return fmt.Sprintf("%g,%g,%g", w[0], w[1], w[2])
}

// Aggregator combines the signals of a sentence into a score.
type Aggregator interface {
	Score(s Signals) float64
	Name() string
}

type weighted struct {
	w Weights
}

// Weighted scores w0*verb + w1*(1-tense) + w2*punct.
func Weighted(w Weights) Aggregator {
	return weighted{w: w}
}

func (a weighted) Score(s Signals) float64 {
	return a.w[0]*float64(s.VerbBeforePronoun) +
		a.w[1]*float64(1-s.Tense) +
		a.w[2]*float64(s.Punct)
}

func (a weighted) Name() string {
	return "weighted(" + a.w.String() + ")"
}

type uniform struct{}

// Uniform scores the mean of verb, 1-tense and punct.
func Uniform() Aggregator {
	return uniform{}
}

func (uniform) Score(s Signals) float64 {
	return float64(s.VerbBeforePronoun+(1-s.Tense)+s.Punct) / 3
}

func (uniform) Name() string {
	return "uniform"
}

// Label maps a score to its label.
func Label(score float64) string {
	if score >= Threshold {
		return LabelAsking
	}
	return LabelShared
}
