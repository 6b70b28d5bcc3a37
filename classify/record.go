package classify

import (
	"context"
	"fmt"

	sent "github.com/revelaction/mailshare/sentence"
	"github.com/revelaction/mailshare/tagger"
	"github.com/revelaction/mailshare/tagset"
)

// Lemmas a sentence must contain to be classified.
const (
	LemmaShare = "share"
	LemmaEmail = "email"
)

const questionMark = "?"

// Record is a relevant input sentence ready for scoring.
type Record struct {
	// Index is the position of the sentence in the input.
	Index int

	// Tokens are the tagged tokens without question marks.
	Tokens []sent.Token

	// Tense is 1 when a form of "share" is a past participle.
	Tense int

	// Punct is 1 when the sentence contains a question mark.
	Punct int

	// Length is the number of tagged tokens, question marks included.
	Length int
}

// Batch holds the relevant sentences of an input, in input order.
type Batch []Record

func (b Batch) Indexes() []int {
	out := make([]int, len(b))
	for i, r := range b {
		out[i] = r.Index
	}
	return out
}

func (b Batch) Sequences() [][]sent.Token {
	out := make([][]sent.Token, len(b))
	for i, r := range b {
		out[i] = r.Tokens
	}
	return out
}

func (b Batch) Tenses() []int {
	out := make([]int, len(b))
	for i, r := range b {
		out[i] = r.Tense
	}
	return out
}

func (b Batch) Puncts() []int {
	out := make([]int, len(b))
	for i, r := range b {
		out[i] = r.Punct
	}
	return out
}

func (b Batch) Lengths() []int {
	out := make([]int, len(b))
	for i, r := range b {
		out[i] = r.Length
	}
	return out
}

// MaxLength returns the largest Length of the batch.
func (b Batch) MaxLength() int {
	m := 0
	for _, r := range b {
		m = max(m, r.Length)
	}
	return m
}

// Relevant reports whether tokens hold both the "share" and "email" lemmas.
func Relevant(tokens []sent.Token) bool {
	lemmas := sent.Lemmas(tokens)
	return lemmas[LemmaShare] && lemmas[LemmaEmail]
}

// NewRecord builds the record of a relevant sentence.
func NewRecord(index int, tokens []sent.Token) Record {
	rec := Record{Index: index, Tokens: make([]sent.Token, 0, len(tokens))}
	for _, t := range tokens {
		rec.Length++

		switch t.Lemma {
		case LemmaShare:
			if t.Explain == tagset.PastParticiple {
				rec.Tense = 1
			}
		case questionMark:
			rec.Punct = 1
			continue
		}

		rec.Tokens = append(rec.Tokens, t)
	}

	return rec
}

// Preprocess tags the sentences and keeps the relevant ones. ok is false
// when no sentence is relevant, which is not an error.
func Preprocess(ctx context.Context, t tagger.Tagger, sentences []string, batchSize int) (Batch, bool, error) {
	tagged, err := t.Tag(ctx, sentences, batchSize)
	if err != nil {
		return nil, false, fmt.Errorf("tagging sentences: %w", err)
	}

	if len(tagged) != len(sentences) {
		return nil, false, fmt.Errorf("tagger returned %d results for %d sentences", len(tagged), len(sentences))
	}

	var batch Batch
	for i, tokens := range tagged {
		if !Relevant(tokens) {
			continue
		}

		batch = append(batch, NewRecord(i, tokens))
	}

	return batch, len(batch) > 0, nil
}
