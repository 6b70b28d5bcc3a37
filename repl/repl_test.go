package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/mailshare/classify"
	"github.com/revelaction/mailshare/render"
	"github.com/revelaction/mailshare/tagger"
)

func newHandler(out *bytes.Buffer) *Handler {
	return NewHandler(tagger.NewRule(), &render.TextRenderer{WithScore: true}, out)
}

func TestEvalClassifies(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	quit, err := h.Eval(context.Background(), "Can I share your email?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quit {
		t.Fatal("unexpected quit")
	}

	want := classify.LabelAsking + " (1.00)\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestEvalNotRelevant(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	if _, err := h.Eval(context.Background(), "Hello there"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(out.String()) != classify.NoRelevantText {
		t.Fatalf("got %q", out.String())
	}
}

func TestEvalEmpty(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	quit, err := h.Eval(context.Background(), "   ")
	if err != nil || quit {
		t.Fatalf("got quit=%t err=%v", quit, err)
	}

	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestEvalCommands(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)
	ctx := context.Background()

	if _, err := h.Eval(ctx, "/uniform"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Aggregator().Name() != "uniform" {
		t.Fatalf("expected uniform, got %s", h.Aggregator().Name())
	}

	if _, err := h.Eval(ctx, "/weights 1, 0, 0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Aggregator().Name() != "weighted(1,0,0)" {
		t.Fatalf("expected weighted(1,0,0), got %s", h.Aggregator().Name())
	}

	if _, err := h.Eval(ctx, "/weights 1 2"); err == nil {
		t.Fatal("expected error for two weights")
	}

	if h.Aggregator().Name() != "weighted(1,0,0)" {
		t.Fatalf("aggregator changed by invalid command: %s", h.Aggregator().Name())
	}

	if _, err := h.Eval(ctx, "/bogus"); !errors.Is(err, errUnknownCommand) {
		t.Fatalf("expected errUnknownCommand, got %v", err)
	}

	quit, err := h.Eval(ctx, "/quit")
	if err != nil || !quit {
		t.Fatalf("got quit=%t err=%v", quit, err)
	}
}

func TestParseWeights(t *testing.T) {
	cases := []struct {
		args []string
		want classify.Weights
		ok   bool
	}{
		{[]string{"0.5", "0.3", "0.2"}, classify.Weights{0.5, 0.3, 0.2}, true},
		{[]string{"0.5,0.3,0.2"}, classify.Weights{0.5, 0.3, 0.2}, true},
		{[]string{"0.5,", "0.3,", "0.2"}, classify.Weights{0.5, 0.3, 0.2}, true},
		{[]string{}, classify.Weights{}, false},
		{[]string{"a", "b", "c"}, classify.Weights{}, false},
	}

	for _, c := range cases {
		got, err := parseWeights(c.args)
		if c.ok != (err == nil) {
			t.Errorf("%v: unexpected error state %v", c.args, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("%v: got %v, want %v", c.args, got, c.want)
		}
	}
}

func TestCompleter(t *testing.T) {
	buf := prompt.NewBuffer()
	buf.InsertText("/u", false, true)

	s := completer(*buf.Document())
	if len(s) != 1 || s[0].Text != cmdUniform {
		t.Fatalf("unexpected suggestions %v", s)
	}

	buf = prompt.NewBuffer()
	buf.InsertText("Can I", false, true)
	if s := completer(*buf.Document()); len(s) != 0 {
		t.Fatalf("expected no suggestions, got %v", s)
	}
}
