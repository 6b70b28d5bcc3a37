// Package tagset holds the english fine grained tags and universal coarse
// parts of speech produced by the taggers, together with their human
// readable descriptions as spaCy's glossary spells them.
package tagset

// Fine grained tags referenced by the classifier.
const (
	MD  = "MD"
	PRP = "PRP"
	RB  = "RB"
	VBD = "VBD"
	VBN = "VBN"
)

// Coarse parts of speech referenced by the classifier.
const (
	AUX   = "AUX"
	PART  = "PART"
	PRON  = "PRON"
	PUNCT = "PUNCT"
	VERB  = "VERB"
)

// Descriptions compared by the classifier.
const (
	ModalAuxiliary = "verb, modal auxiliary"
	PastParticiple = "verb, past participle"
	Adverb         = "adverb"
)

var tags = map[string]string{
	"$":     "symbol, currency",
	"``":    "opening quotation mark",
	"''":    "closing quotation mark",
	",":     "punctuation mark, comma",
	"-LRB-": "left round bracket",
	"-RRB-": "right round bracket",
	".":     "punctuation mark, sentence closer",
	":":     "punctuation mark, colon or ellipsis",
	"ADD":   "email",
	"AFX":   "affix",
	"CC":    "conjunction, coordinating",
	"CD":    "cardinal number",
	"DT":    "determiner",
	"EX":    "existential there",
	"FW":    "foreign word",
	"GW":    "additional word in multi-word expression",
	"HYPH":  "punctuation mark, hyphen",
	"IN":    "conjunction, subordinating or preposition",
	"JJ":    "adjective (English), other noun-modifier (Chinese)",
	"JJR":   "adjective, comparative",
	"JJS":   "adjective, superlative",
	"LS":    "list item marker",
	"MD":    ModalAuxiliary,
	"NFP":   "superfluous punctuation",
	"NIL":   "missing tag",
	"NN":    "noun, singular or mass",
	"NNP":   "noun, proper singular",
	"NNPS":  "noun, proper plural",
	"NNS":   "noun, plural",
	"PDT":   "predeterminer",
	"POS":   "possessive ending",
	"PRP":   "pronoun, personal",
	"PRP$":  "pronoun, possessive",
	"RB":    Adverb,
	"RBR":   "adverb, comparative",
	"RBS":   "adverb, superlative",
	"RP":    "adverb, particle",
	"TO":    `infinitival "to"`,
	"UH":    "interjection",
	"VB":    "verb, base form",
	"VBD":   "verb, past tense",
	"VBG":   "verb, gerund or present participle",
	"VBN":   PastParticiple,
	"VBP":   "verb, non-3rd person singular present",
	"VBZ":   "verb, 3rd person singular present",
	"WDT":   "wh-determiner",
	"WP":    "wh-pronoun, personal",
	"WP$":   "wh-pronoun, possessive",
	"WRB":   "wh-adverb",
	"SP":    "space (English), sentence-final particle (Chinese)",
	"XX":    "unknown",
	"_SP":   "whitespace",
}

var pos = map[string]string{
	"ADJ":   "adjective",
	"ADP":   "adposition",
	"ADV":   "adverb",
	"AUX":   "auxiliary",
	"CONJ":  "conjunction",
	"CCONJ": "coordinating conjunction",
	"DET":   "determiner",
	"INTJ":  "interjection",
	"NOUN":  "noun",
	"NUM":   "numeral",
	"PART":  "particle",
	"PRON":  "pronoun",
	"PROPN": "proper noun",
	"PUNCT": "punctuation",
	"SCONJ": "subordinating conjunction",
	"SYM":   "symbol",
	"VERB":  "verb",
	"X":     "other",
	"EOL":   "end of line",
	"SPACE": "space",
}

// Explain returns the description of a fine grained tag, or the empty
// string for an unknown tag.
func Explain(tag string) string {
	return tags[tag]
}

// ExplainPos returns the description of a coarse part of speech.
func ExplainPos(p string) string {
	return pos[p]
}

// Known reports whether tag belongs to the tag set.
func Known(tag string) bool {
	_, ok := tags[tag]
	return ok
}
