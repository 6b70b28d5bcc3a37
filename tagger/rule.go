package tagger

import (
	"context"
	"strings"
	"unicode"

	sent "github.com/revelaction/mailshare/sentence"
)

// Rule is a dependency free english tagger built on a closed class lexicon
// and suffix rules. It knows the vocabulary of short requests about emails
// well enough to drive the classifier without an external model.
type Rule struct{}

var _ Tagger = (*Rule)(nil)

func NewRule() *Rule {
	return &Rule{}
}

func (r *Rule) Tag(ctx context.Context, texts []string, size int) ([][]sent.Token, error) {
	n := batchSize(size)
	out := make([][]sent.Token, len(texts))
	for start := 0; start < len(texts); start += n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := min(start+n, len(texts))
		for i := start; i < end; i++ {
			out[i] = r.TagText(texts[i])
		}
	}

	return out, nil
}

// TagText tokenizes and annotates a single text.
func (r *Rule) TagText(text string) []sent.Token {
	words := split(text)
	tokens := make([]sent.Token, len(words))
	for i, w := range words {
		tokens[i] = sent.Token{Text: w.text, Idx: w.idx, Index: i}
	}

	// left to right: the participle rule looks at already analysed tokens
	for i := range tokens {
		analyse(tokens, i)
	}

	explain(tokens)
	return tokens
}

type word struct {
	text string
	idx  int
}

func split(text string) []word {
	var words []word
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		switch r := runes[i]; {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			for i < len(runes) && (isWordRune(runes[i]) || inner(runes, i)) {
				i++
			}
			words = append(words, clitics(string(runes[start:i]), start)...)
		default:
			words = append(words, word{string(r), i})
			i++
		}
	}

	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// inner reports whether the rune at i joins two word runes (e-mail, can't).
func inner(runes []rune, i int) bool {
	switch runes[i] {
	case '\'', '’', '-', '@', '.':
		return i > 0 && i+1 < len(runes) && isWordRune(runes[i-1]) && isWordRune(runes[i+1])
	}
	return false
}

// clitics splits contractions the way english models do: "can't" becomes
// "ca" and "n't", "I'm" becomes "I" and "'m".
func clitics(w string, idx int) []word {
	lw := normalize(w)
	n := len([]rune(w))

	if strings.HasSuffix(lw, "n't") && n > 3 {
		return cut(w, idx, n-3)
	}

	for _, suffix := range []string{"'m", "'s", "'re", "'ve", "'ll", "'d"} {
		if strings.HasSuffix(lw, suffix) && n > len(suffix) {
			return cut(w, idx, n-len(suffix))
		}
	}

	return []word{{w, idx}}
}

func cut(w string, idx, at int) []word {
	r := []rune(w)
	return []word{{string(r[:at]), idx}, {string(r[at:]), idx + at}}
}

func normalize(w string) string {
	return strings.ToLower(strings.ReplaceAll(w, "’", "'"))
}

func analyse(tokens []sent.Token, i int) {
	t := &tokens[i]
	lw := normalize(t.Text)

	if e, ok := punct[lw]; ok {
		set(t, e)
		return
	}

	if e, ok := closed[lw]; ok {
		set(t, e)
		return
	}

	if isNumber(lw) {
		set(t, entry{lw, "CD", "NUM"})
		return
	}

	if lemma, ok := nouns[lw]; ok {
		set(t, entry{lemma, "NN", "NOUN"})
		return
	}

	if stem, ok := plural(lw); ok {
		if lemma, ok := nouns[stem]; ok {
			set(t, entry{lemma, "NNS", "NOUN"})
			return
		}
	}

	if base, ok := irregular[lw]; ok {
		set(t, entry{base, pastTag(tokens, i), "VERB"})
		return
	}

	if verbs[lw] {
		set(t, entry{lw, baseTag(tokens, i), "VERB"})
		return
	}

	if base, ok := verbStem(lw, "ed"); ok {
		set(t, entry{base, pastTag(tokens, i), "VERB"})
		return
	}

	if base, ok := verbStem(lw, "ing"); ok {
		set(t, entry{base, "VBG", "VERB"})
		return
	}

	if base, ok := verbStem(lw, "s"); ok {
		set(t, entry{base, "VBZ", "VERB"})
		return
	}

	if stem, ok := plural(lw); ok {
		set(t, entry{stem, "NNS", "NOUN"})
		return
	}

	if strings.HasSuffix(lw, "ed") && len(lw) > 4 {
		set(t, entry{strings.TrimSuffix(lw, "ed"), pastTag(tokens, i), "VERB"})
		return
	}

	if strings.HasSuffix(lw, "ly") && len(lw) > 4 {
		set(t, entry{lw, "RB", "ADV"})
		return
	}

	if i > 0 && unicode.IsUpper([]rune(t.Text)[0]) {
		set(t, entry{t.Text, "NNP", "PROPN"})
		return
	}

	set(t, entry{lw, "NN", "NOUN"})
}

func set(t *sent.Token, e entry) {
	t.Lemma = e.lemma
	t.Tag = e.tag
	t.Pos = e.pos
}

func isNumber(lw string) bool {
	for _, r := range lw {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return lw != ""
}

// verbStem returns the known base form of lw once suffix is removed.
func verbStem(lw, suffix string) (string, bool) {
	if !strings.HasSuffix(lw, suffix) || len(lw) <= len(suffix)+1 {
		return "", false
	}

	base := strings.TrimSuffix(lw, suffix)
	candidates := []string{base, base + "e"}
	if n := len(base); n > 1 && base[n-1] == base[n-2] {
		candidates = append(candidates, base[:n-1])
	}
	switch {
	case strings.HasSuffix(base, "ie"):
		candidates = append(candidates, strings.TrimSuffix(base, "ie")+"y")
	case strings.HasSuffix(base, "i"):
		candidates = append(candidates, strings.TrimSuffix(base, "i")+"y")
	case strings.HasSuffix(base, "e"):
		candidates = append(candidates, strings.TrimSuffix(base, "e"))
	}

	for _, c := range candidates {
		if verbs[c] {
			return c, true
		}
	}

	return "", false
}

func plural(lw string) (string, bool) {
	if len(lw) <= 3 || !strings.HasSuffix(lw, "s") || strings.HasSuffix(lw, "ss") {
		return "", false
	}

	switch {
	case strings.HasSuffix(lw, "ies"):
		return strings.TrimSuffix(lw, "ies") + "y", true
	case strings.HasSuffix(lw, "sses"), strings.HasSuffix(lw, "xes"),
		strings.HasSuffix(lw, "ches"), strings.HasSuffix(lw, "shes"):
		return strings.TrimSuffix(lw, "es"), true
	}

	return strings.TrimSuffix(lw, "s"), true
}

// clauseBoundary reports whether the backwards scan of a verb's auxiliaries
// must stop at t.
func clauseBoundary(t sent.Token) bool {
	switch t.Pos {
	case "VERB", "PUNCT", "SCONJ", "CCONJ":
		return true
	}
	return false
}

// pastTag tells a past participle (after have or be) from a simple past.
func pastTag(tokens []sent.Token, i int) string {
	for j := i - 1; j >= 0; j-- {
		t := tokens[j]
		if clauseBoundary(t) {
			break
		}

		if t.Pos == "AUX" && (t.Lemma == "have" || t.Lemma == "be") {
			return "VBN"
		}
	}

	return "VBD"
}

// baseTag tells an infinitive (after a modal, "to" or "do") from a present
// tense verb.
func baseTag(tokens []sent.Token, i int) string {
	if i == 0 {
		return "VB"
	}

	for j := i - 1; j >= 0; j-- {
		t := tokens[j]
		if clauseBoundary(t) {
			break
		}

		if t.Tag == "MD" || t.Tag == "TO" || (t.Pos == "AUX" && t.Lemma == "do") {
			return "VB"
		}
	}

	switch tokens[i-1].Pos {
	case "PRON", "NOUN", "PROPN":
		return "VBP"
	}

	return "VB"
}
