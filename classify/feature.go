package classify

import (
	"fmt"

	sent "github.com/revelaction/mailshare/sentence"
	"github.com/revelaction/mailshare/tagset"
)

// auxiliary matches "can", "do", "have"... by coarse part of speech or by
// the modal description.
func auxiliary(t sent.Token) bool {
	return t.Pos == tagset.AUX || t.Explain == tagset.ModalAuxiliary
}

func pronoun(t sent.Token) bool {
	return t.Tag == tagset.PRP
}

// negation matches the contracted "n't".
func negation(t sent.Token) bool {
	return t.Tag == tagset.RB && t.Pos == tagset.PART && t.Explain == tagset.Adverb
}

// VerbBeforePronoun returns 1 when an auxiliary is directly followed by a
// personal pronoun ("can I"), or by a contracted negation and a personal
// pronoun ("can't I"). Otherwise it returns 0.
func VerbBeforePronoun(tokens []sent.Token) int {
	for i, t := range tokens {
		if !auxiliary(t) {
			continue
		}

		if i+1 < len(tokens) && pronoun(tokens[i+1]) {
			return 1
		}

		if i+2 < len(tokens) && negation(tokens[i+1]) && pronoun(tokens[i+2]) {
			return 1
		}
	}

	return 0
}

// ScoreBatch computes VerbBeforePronoun for every row of a rectangular batch.
func ScoreBatch(batch [][]sent.Token) ([]int, error) {
	flags := make([]int, len(batch))
	for i, row := range batch {
		if len(row) != len(batch[0]) {
			return nil, fmt.Errorf("%w: row %d has %d tokens, row 0 has %d", ErrRagged, i, len(row), len(batch[0]))
		}

		flags[i] = VerbBeforePronoun(row)
	}

	return flags, nil
}
