package sentence

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name: "offsets",
			tokens: []Token{
				{Text: "Can", Idx: 10},
				{Text: "I", Idx: 14},
				{Text: "share", Idx: 17},
				{Text: "?", Idx: 22},
			},
			want: "Can I  share?",
		},
		{
			name:   "no offsets",
			tokens: []Token{{Text: "share"}, {Text: "email"}},
			want:   "share email",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Text(c.tokens); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestIsPad(t *testing.T) {
	if !PadToken.IsPad() {
		t.Fatal("PadToken is not a pad")
	}

	if (Token{Text: "sp", Lemma: "sp", Tag: "sp", Pos: "sp"}).IsPad() {
		t.Fatal("token without explain reported as pad")
	}
}

func TestLemmas(t *testing.T) {
	set := Lemmas([]Token{{Lemma: "share"}, {Lemma: "email"}, {Lemma: "share"}})
	if len(set) != 2 || !set["share"] || !set["email"] {
		t.Fatalf("unexpected set %v", set)
	}
}
