package sentence

import "strings"

// Pad is the value of every field of the padding sentinel.
const Pad = "sp"

// PadToken fills the tail of a sentence when a batch is made rectangular.
var PadToken = Token{Text: Pad, Lemma: Pad, Tag: Pad, Pos: Pad, Explain: Pad}

type Doc struct {
	Id int

	Title string

	Labels []string
	Tokens [][]Token `json:"tokens"`
}

// Library is a collection of Doc
type Library []Doc

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Fine grained tag (Penn Treebank for english models)
	Tag string `json:"tag"`

	// Coarse universal part of speech
	Pos string `json:"pos"`

	// Human readable description of Tag
	Explain string `json:"explain,omitempty"`

	// the index of the start character of the token in the original text
	Idx int `json:"idx"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsPad reports whether t is the padding sentinel.
func (t Token) IsPad() bool {
	return t == PadToken
}

// Text rebuilds the sentence text from its tokens. Idx offsets are used
// to restore the original spacing; tokens without offsets are joined with a
// single space.
func Text(tokens []Token) string {
	var sb strings.Builder
	end := 0
	for i, t := range tokens {
		if i > 0 {
			switch {
			case t.Idx > end:
				sb.WriteString(strings.Repeat(" ", t.Idx-end))
			case t.Idx == 0:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.Text)
		end = t.Idx + len([]rune(t.Text))
	}

	return sb.String()
}

// Lemmas returns the set of lemmas of the tokens.
func Lemmas(tokens []Token) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t.Lemma] = true
	}
	return set
}
