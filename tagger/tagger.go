// Package tagger turns raw sentences into part of speech annotated tokens.
//
// The classifier treats tagging as an external capability: every
// implementation returns, for each input text, the ordered tokens with
// lemma, fine tag, coarse part of speech and tag description filled in.
package tagger

import (
	"context"
	"errors"

	sent "github.com/revelaction/mailshare/sentence"
	"github.com/revelaction/mailshare/tagset"
)

// DefaultBatchSize is the number of texts handed to the underlying tagger
// at once when the caller does not choose one.
const DefaultBatchSize = 50

var (
	// ErrCommand is returned when an external tagging program fails or
	// violates the line protocol.
	ErrCommand = errors.New("tagger command failed")

	// ErrUnknownSentence is returned by Static for texts it holds no tokens for.
	ErrUnknownSentence = errors.New("sentence not tagged")
)

// Tagger annotates texts. The result has one token slice per text, in
// input order. batchSize is a hint for implementations that process texts
// in groups.
type Tagger interface {
	Tag(ctx context.Context, texts []string, batchSize int) ([][]sent.Token, error)
}

// explain fills the tag description of tokens whose producer left it empty.
func explain(tokens []sent.Token) {
	for i := range tokens {
		if tokens[i].Explain == "" {
			tokens[i].Explain = tagset.Explain(tokens[i].Tag)
		}
	}
}

func batchSize(n int) int {
	if n <= 0 {
		return DefaultBatchSize
	}
	return n
}
