package classify

import (
	"errors"
	"fmt"

	sent "github.com/revelaction/mailshare/sentence"
)

// ErrRagged is returned when token sequences cannot form a rectangular batch.
var ErrRagged = errors.New("ragged token batch")

// Pad returns copies of seqs extended with sent.PadToken to exactly length
// tokens. seqs is not modified. A sequence longer than length is an error.
func Pad(seqs [][]sent.Token, length int) ([][]sent.Token, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrRagged, length)
	}

	out := make([][]sent.Token, len(seqs))
	for i, seq := range seqs {
		if len(seq) > length {
			return nil, fmt.Errorf("%w: sequence %d has %d tokens, more than %d", ErrRagged, i, len(seq), length)
		}

		padded := make([]sent.Token, length)
		n := copy(padded, seq)
		for j := n; j < length; j++ {
			padded[j] = sent.PadToken
		}
		out[i] = padded
	}

	return out, nil
}
