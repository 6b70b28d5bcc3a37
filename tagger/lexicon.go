package tagger

// entry is the closed class analysis of a lower cased word form.
type entry struct {
	lemma string
	tag   string
	pos   string
}

var closed = map[string]entry{
	// modals
	"can":    {"can", "MD", "AUX"},
	"ca":     {"can", "MD", "AUX"},
	"could":  {"could", "MD", "AUX"},
	"will":   {"will", "MD", "AUX"},
	"wo":     {"will", "MD", "AUX"},
	"'ll":    {"will", "MD", "AUX"},
	"would":  {"would", "MD", "AUX"},
	"'d":     {"would", "MD", "AUX"},
	"shall":  {"shall", "MD", "AUX"},
	"sha":    {"shall", "MD", "AUX"},
	"should": {"should", "MD", "AUX"},
	"may":    {"may", "MD", "AUX"},
	"might":  {"might", "MD", "AUX"},
	"must":   {"must", "MD", "AUX"},

	// be, have, do
	"am":     {"be", "VBP", "AUX"},
	"'m":     {"be", "VBP", "AUX"},
	"is":     {"be", "VBZ", "AUX"},
	"'s":     {"be", "VBZ", "AUX"},
	"are":    {"be", "VBP", "AUX"},
	"'re":    {"be", "VBP", "AUX"},
	"was":    {"be", "VBD", "AUX"},
	"were":   {"be", "VBD", "AUX"},
	"be":     {"be", "VB", "AUX"},
	"been":   {"be", "VBN", "AUX"},
	"being":  {"be", "VBG", "AUX"},
	"have":   {"have", "VBP", "AUX"},
	"'ve":    {"have", "VBP", "AUX"},
	"has":    {"have", "VBZ", "AUX"},
	"had":    {"have", "VBD", "AUX"},
	"having": {"have", "VBG", "AUX"},
	"do":     {"do", "VBP", "AUX"},
	"does":   {"do", "VBZ", "AUX"},
	"did":    {"do", "VBD", "AUX"},

	// negation
	"n't": {"not", "RB", "PART"},
	"not": {"not", "RB", "PART"},

	// personal pronouns
	"i":        {"I", "PRP", "PRON"},
	"me":       {"I", "PRP", "PRON"},
	"you":      {"you", "PRP", "PRON"},
	"he":       {"he", "PRP", "PRON"},
	"him":      {"he", "PRP", "PRON"},
	"she":      {"she", "PRP", "PRON"},
	"her":      {"she", "PRP", "PRON"},
	"it":       {"it", "PRP", "PRON"},
	"we":       {"we", "PRP", "PRON"},
	"us":       {"we", "PRP", "PRON"},
	"they":     {"they", "PRP", "PRON"},
	"them":     {"they", "PRP", "PRON"},
	"myself":   {"myself", "PRP", "PRON"},
	"yourself": {"yourself", "PRP", "PRON"},

	// possessive pronouns
	"my":    {"my", "PRP$", "PRON"},
	"your":  {"your", "PRP$", "PRON"},
	"his":   {"his", "PRP$", "PRON"},
	"its":   {"its", "PRP$", "PRON"},
	"our":   {"our", "PRP$", "PRON"},
	"their": {"their", "PRP$", "PRON"},

	// determiners
	"the":   {"the", "DT", "DET"},
	"a":     {"a", "DT", "DET"},
	"an":    {"an", "DT", "DET"},
	"this":  {"this", "DT", "DET"},
	"that":  {"that", "DT", "DET"},
	"these": {"these", "DT", "DET"},
	"those": {"those", "DT", "DET"},
	"some":  {"some", "DT", "DET"},
	"any":   {"any", "DT", "DET"},
	"every": {"every", "DT", "DET"},
	"each":  {"each", "DT", "DET"},
	"all":   {"all", "DT", "DET"},
	"no":    {"no", "DT", "DET"},

	// adpositions and subordinators
	"to":      {"to", "TO", "PART"},
	"with":    {"with", "IN", "ADP"},
	"of":      {"of", "IN", "ADP"},
	"for":     {"for", "IN", "ADP"},
	"in":      {"in", "IN", "ADP"},
	"on":      {"on", "IN", "ADP"},
	"at":      {"at", "IN", "ADP"},
	"by":      {"by", "IN", "ADP"},
	"from":    {"from", "IN", "ADP"},
	"about":   {"about", "IN", "ADP"},
	"into":    {"into", "IN", "ADP"},
	"after":   {"after", "IN", "ADP"},
	"before":  {"before", "IN", "ADP"},
	"without": {"without", "IN", "ADP"},
	"if":      {"if", "IN", "SCONJ"},
	"whether": {"whether", "IN", "SCONJ"},
	"because": {"because", "IN", "SCONJ"},

	// coordinators
	"and": {"and", "CC", "CCONJ"},
	"or":  {"or", "CC", "CCONJ"},
	"but": {"but", "CC", "CCONJ"},

	// wh words
	"what":  {"what", "WP", "PRON"},
	"who":   {"who", "WP", "PRON"},
	"which": {"which", "WDT", "DET"},
	"when":  {"when", "WRB", "SCONJ"},
	"where": {"where", "WRB", "SCONJ"},
	"why":   {"why", "WRB", "SCONJ"},
	"how":   {"how", "WRB", "SCONJ"},

	// adverbs
	"already": {"already", "RB", "ADV"},
	"yet":     {"yet", "RB", "ADV"},
	"just":    {"just", "RB", "ADV"},
	"also":    {"also", "RB", "ADV"},
	"now":     {"now", "RB", "ADV"},
	"here":    {"here", "RB", "ADV"},
	"there":   {"there", "RB", "ADV"},
	"then":    {"then", "RB", "ADV"},
	"too":     {"too", "RB", "ADV"},
	"very":    {"very", "RB", "ADV"},
	"again":   {"again", "RB", "ADV"},
	"never":   {"never", "RB", "ADV"},
	"still":   {"still", "RB", "ADV"},
	"soon":    {"soon", "RB", "ADV"},

	// interjections
	"hello":  {"hello", "UH", "INTJ"},
	"hi":     {"hi", "UH", "INTJ"},
	"hey":    {"hey", "UH", "INTJ"},
	"please": {"please", "UH", "INTJ"},
	"thanks": {"thank", "UH", "INTJ"},
	"yes":    {"yes", "UH", "INTJ"},
	"ok":     {"ok", "UH", "INTJ"},
	"okay":   {"okay", "UH", "INTJ"},
}

var punct = map[string]entry{
	"?":  {"?", ".", "PUNCT"},
	".":  {".", ".", "PUNCT"},
	"!":  {"!", ".", "PUNCT"},
	",":  {",", ",", "PUNCT"},
	":":  {":", ":", "PUNCT"},
	";":  {";", ":", "PUNCT"},
	"-":  {"-", "HYPH", "PUNCT"},
	"(":  {"(", "-LRB-", "PUNCT"},
	")":  {")", "-RRB-", "PUNCT"},
	"\"": {"\"", "''", "PUNCT"},
	"'":  {"'", "''", "PUNCT"},
	"$":  {"$", "$", "SYM"},
}

// verbs lists the base forms recognised as verbs by the suffix rules.
var verbs = map[string]bool{
	"share": true, "send": true, "give": true, "forward": true, "pass": true,
	"use": true, "post": true, "ask": true, "know": true, "want": true,
	"let": true, "tell": true, "add": true, "need": true, "get": true,
	"make": true, "take": true, "see": true, "hope": true, "like": true,
	"check": true, "include": true, "keep": true, "put": true, "find": true,
	"write": true, "read": true, "contact": true, "reach": true,
	"provide": true, "distribute": true, "publish": true, "mention": true,
	"receive": true, "mind": true, "allow": true, "wonder": true,
	"copy": true, "leak": true, "hand": true,
}

// irregular maps past forms to their base form.
var irregular = map[string]string{
	"sent": "send", "gave": "give", "given": "give", "told": "tell",
	"got": "get", "gotten": "get", "made": "make", "took": "take",
	"taken": "take", "saw": "see", "seen": "see", "knew": "know",
	"known": "know", "found": "find", "wrote": "write", "written": "write",
	"kept": "keep",
}

// nouns lists word forms that must not be read as verbs.
var nouns = map[string]string{
	"email":   "email",
	"e-mail":  "email",
	"mail":    "mail",
	"address": "address",
	"class":   "class",
	"student": "student",
	"teacher": "teacher",
	"friend":  "friend",
	"list":    "list",
	"group":   "group",
}
