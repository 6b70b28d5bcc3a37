package tagger

import (
	"context"
	"fmt"

	sent "github.com/revelaction/mailshare/sentence"
)

// Static serves the tokens of already tagged corpus documents. A text is
// looked up by the sentence text rebuilt from its tokens. Texts keeps every
// added sentence, repeated ones included, so a document is classified line
// by line. Repeated texts share the tokens added last.
type Static struct {
	texts  []string
	tokens map[string][]sent.Token
}

var _ Tagger = (*Static)(nil)

// NewStatic indexes every sentence of docs.
func NewStatic(docs ...sent.Doc) *Static {
	s := &Static{tokens: map[string][]sent.Token{}}
	for _, doc := range docs {
		for _, tokens := range doc.Tokens {
			s.Add(tokens)
		}
	}
	return s
}

// Add indexes one tagged sentence and returns its text.
func (s *Static) Add(tokens []sent.Token) string {
	text := sent.Text(tokens)
	s.texts = append(s.texts, text)

	cp := make([]sent.Token, len(tokens))
	copy(cp, tokens)
	explain(cp)
	s.tokens[text] = cp
	return text
}

// Texts returns the added sentence texts in insertion order.
func (s *Static) Texts() []string {
	return s.texts
}

func (s *Static) Tag(ctx context.Context, texts []string, size int) ([][]sent.Token, error) {
	out := make([][]sent.Token, len(texts))
	for i, text := range texts {
		if i%batchSize(size) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tokens, ok := s.tokens[text]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSentence, text)
		}
		out[i] = tokens
	}

	return out, nil
}
