package classify

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	sent "github.com/revelaction/mailshare/sentence"
)

func TestVerbBeforePronoun(t *testing.T) {
	may := tok("May", "may", "MD", "VERB", "verb, modal auxiliary")
	you := tok("you", "you", "PRP", "PRON", "pronoun, personal")

	cases := []struct {
		name   string
		tokens []sent.Token
		want   int
	}{
		{"direct", []sent.Token{tkCan, tkI, tkShare, tkYour, tkEmail}, 1},
		{"modal description", []sent.Token{may, you, tkShare}, 1},
		{"contracted", []sent.Token{tkI, tkCan, tkShare, tkYour, tkEmail, tkComma, tkCa, tkNot, tkI}, 1},
		{"statement", []sent.Token{tkI, tkHave, tkShared, tkYour, tkEmail}, 0},
		{"possessive is not personal", []sent.Token{tkCan, tkYour, tkEmail}, 0},
		{"auxiliary last", []sent.Token{tkI, tkCan}, 0},
		{"negation last", []sent.Token{tkI, tkCa, tkNot}, 0},
		{"pads never match", []sent.Token{tkCan, sent.PadToken, sent.PadToken}, 0},
		{"empty", nil, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := VerbBeforePronoun(c.tokens); got != c.want {
				t.Fatalf("got %d, want %d", got, c.want)
			}
		})
	}
}

// A pronoun at the head of the next row must not be paired with an
// auxiliary at the tail of the previous one.
func TestScoreBatchNoWraparound(t *testing.T) {
	batch := [][]sent.Token{
		{tkShare, tkEmail, tkCan},
		{tkI, tkShare, tkEmail},
		{tkCan, tkI, tkShare},
	}

	got, err := ScoreBatch(batch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int{0, 0, 1}, got); diff != "" {
		t.Fatalf("flags mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreBatchRagged(t *testing.T) {
	_, err := ScoreBatch([][]sent.Token{{tkCan, tkI}, {tkCan}})
	if !errors.Is(err, ErrRagged) {
		t.Fatalf("expected ErrRagged, got %v", err)
	}
}
