// Package classify labels email excerpts as a request to share an email
// address or as a notice that it has already been shared.
//
// A sentence is scored on three signals: an auxiliary directly before a
// personal pronoun ("can I", "can't I"), the absence of a past participle
// of "share", and a question mark. Only sentences with the lemmas "share"
// and "email" are classified.
package classify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/revelaction/mailshare/tagger"
	"go.uber.org/zap"
)

const (
	// DefaultBatchSize is the number of sentences scored together.
	DefaultBatchSize = 250

	// NoRelevantText explains an input without relevant sentences.
	NoRelevantText = "The text provided do not contain the stem 'share' and the word 'email' and so, could not be processed."
)

// ErrBatchSize is returned for a non positive batch size.
var ErrBatchSize = errors.New("batch size must be positive")

// Result is the classification of one relevant sentence.
type Result struct {
	// Index is the position of the sentence in the input.
	Index   int     `json:"index"`
	Label   string  `json:"label"`
	Score   float64 `json:"score"`
	Signals Signals `json:"signals"`

	// Length is the number of tagged tokens of the sentence.
	Length int `json:"tokens"`
}

// Report holds the results of a Classify call, in input order.
type Report struct {
	// Total is the number of input sentences.
	Total   int
	Results []Result
}

// Relevant reports whether any input sentence was classified.
func (r Report) Relevant() bool {
	return len(r.Results) > 0
}

func (r Report) Indexes() []int {
	out := make([]int, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Index
	}
	return out
}

func (r Report) Labels() []string {
	out := make([]string, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Label
	}
	return out
}

func (r Report) Scores() []float64 {
	out := make([]float64, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Score
	}
	return out
}

type Option func(*Classifier)

// WithBatchSize sets the number of sentences scored together.
func WithBatchSize(n int) Option {
	return func(c *Classifier) {
		c.batchSize = n
	}
}

// WithTaggerBatchSize sets the batch hint passed to the tagger.
func WithTaggerBatchSize(n int) Option {
	return func(c *Classifier) {
		c.taggerBatchSize = n
	}
}

func WithAggregator(a Aggregator) Option {
	return func(c *Classifier) {
		c.aggregator = a
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		c.log = l
	}
}

// Classifier runs the whole pipeline: tagging, relevance filtering,
// padding, feature scoring, aggregation and labeling.
type Classifier struct {
	tagger          tagger.Tagger
	batchSize       int
	taggerBatchSize int
	aggregator      Aggregator
	log             *zap.Logger
}

func New(t tagger.Tagger, opts ...Option) *Classifier {
	c := &Classifier{
		tagger:          t,
		batchSize:       DefaultBatchSize,
		taggerBatchSize: tagger.DefaultBatchSize,
		aggregator:      Weighted(DefaultWeights),
		log:             zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Aggregator returns the aggregator in use.
func (c *Classifier) Aggregator() Aggregator {
	return c.aggregator
}

// Classify classifies the relevant sentences. An input without relevant
// sentences yields a Report whose Relevant method returns false.
func (c *Classifier) Classify(ctx context.Context, sentences []string) (Report, error) {
	if c.batchSize <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrBatchSize, c.batchSize)
	}

	run := uuid.NewString()
	log := c.log.With(zap.String("run", run))
	begin := time.Now()

	report := Report{Total: len(sentences)}

	batch, ok, err := Preprocess(ctx, c.tagger, sentences, c.taggerBatchSize)
	if err != nil {
		return Report{}, err
	}

	if !ok {
		log.Info("no relevant sentences", zap.Int("sentences", len(sentences)))
		return report, nil
	}

	padded, err := Pad(batch.Sequences(), batch.MaxLength())
	if err != nil {
		return Report{}, err
	}

	report.Results = make([]Result, 0, len(batch))
	for start := 0; start < len(padded); start += c.batchSize {
		end := min(start+c.batchSize, len(padded))

		flags, err := ScoreBatch(padded[start:end])
		if err != nil {
			return Report{}, err
		}

		for i, flag := range flags {
			rec := batch[start+i]
			sig := Signals{VerbBeforePronoun: flag, Tense: rec.Tense, Punct: rec.Punct}
			score := c.aggregator.Score(sig)
			report.Results = append(report.Results, Result{
				Index:   rec.Index,
				Label:   Label(score),
				Score:   score,
				Signals: sig,
				Length:  rec.Length,
			})
		}

		log.Debug("scored chunk", zap.Int("start", start), zap.Int("end", end))
	}

	log.Info("classified",
		zap.Int("sentences", len(sentences)),
		zap.Int("relevant", len(batch)),
		zap.String("aggregator", c.aggregator.Name()),
		zap.Duration("took", time.Since(begin)),
	)

	return report, nil
}

// ClassifyOne classifies a single sentence. ok is false when the sentence
// is not relevant.
func (c *Classifier) ClassifyOne(ctx context.Context, sentence string) (Result, bool, error) {
	report, err := c.Classify(ctx, []string{sentence})
	if err != nil {
		return Result{}, false, err
	}

	if !report.Relevant() {
		return Result{}, false, nil
	}

	return report.Results[0], true, nil
}
