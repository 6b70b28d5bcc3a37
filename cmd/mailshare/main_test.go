package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/mailshare/classify"
)

func newUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{Out: &out, Err: &errOut}, &out, &errOut
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	ui, out, errOut := newUI()
	if err := runCommand(context.Background(), args[0], args[1:], ui); err != nil {
		t.Fatalf("%v: unexpected error: %v (stderr %q)", args, err, errOut.String())
	}
	return out.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClassifySentence(t *testing.T) {
	got := run(t, "Can I share your email?")
	want := classify.LabelAsking + "\t1.0\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = run(t, "classify", "-no-score", "Can", "I", "share", "your", "email?")
	if got != classify.LabelAsking+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestClassifySentenceNotRelevant(t *testing.T) {
	got := run(t, "Hello there")
	if strings.TrimSpace(got) != classify.NoRelevantText {
		t.Fatalf("got %q", got)
	}
}

func TestClassifySentenceJSON(t *testing.T) {
	got := run(t, "classify", "-format", "json", "Can I share your email?")
	if !strings.Contains(got, `"label":"`+classify.LabelAsking+`"`) {
		t.Fatalf("unexpected json %q", got)
	}
}

func TestClassifyFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "emails.txt", "Hello there\nCan I share your email?\nI have shared your email.\n")
	outPath := filepath.Join(dir, "out.txt")

	got := run(t, "classify", "-o", outPath, in)
	if !strings.Contains(got, "2 of 3 sentences classified") {
		t.Fatalf("unexpected summary %q", got)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}

	want := "2\t" + classify.LabelAsking + "\t1.0\n" +
		"3\t" + classify.LabelShared + "\t0.0\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", data, want)
	}
}

func TestClassifyFileNotRelevant(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "emails.txt", "Hello there\nSee you\n")
	outPath := filepath.Join(dir, "out.txt")

	got := run(t, "classify", "-o", outPath, in)
	if strings.TrimSpace(got) != classify.NoRelevantText {
		t.Fatalf("got %q", got)
	}

	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no output file expected, stat error %v", err)
	}
}

func TestClassifyBadArgument(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")

	binary := writeFile(t, dir, "blob.txt", "\xff\xfe share email")

	for _, arg := range []string{dir, binary} {
		got := run(t, "classify", "-o", outPath, arg)
		if got != badArgument+"\n" {
			t.Fatalf("%s: got %q", arg, got)
		}

		if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s: no output file expected, stat error %v", arg, err)
		}
	}
}

func TestClassifyInvalidFlags(t *testing.T) {
	ui, _, _ := newUI()

	if err := runCommand(context.Background(), "classify", []string{"-uniform", "-w", "1,0,0", "x"}, ui); err == nil {
		t.Fatal("expected error for -uniform with -w")
	}

	if err := runCommand(context.Background(), "classify", []string{"-w", "1,0", "x"}, ui); err == nil {
		t.Fatal("expected error for two weights")
	}

	if err := runCommand(context.Background(), "classify", []string{"-batch", "0", "x"}, ui); err == nil {
		t.Fatal("expected error for zero batch")
	}

	if err := runCommand(context.Background(), "classify", []string{"-format", "xml", "x"}, ui); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestClassifyUniform(t *testing.T) {
	got := run(t, "classify", "-uniform", "Can I share your email?")
	if got != classify.LabelAsking+"\t1.0\n" {
		t.Fatalf("got %q", got)
	}
}

func TestClassifyConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "mailshare.yaml", "scoring:\n  weights: [0, 0, 0.2]\noutput:\n  scores: true\n")

	got := run(t, "classify", "-config", cfg, "Can I share your email?")
	if got != classify.LabelShared+"\t0.2\n" {
		t.Fatalf("got %q", got)
	}
}

const tagged = `{
  "Title": "inbox",
  "tokens": [
    [
      {"text": "Can", "lemma": "can", "tag": "MD", "pos": "AUX", "idx": 0, "index": 0},
      {"text": "I", "lemma": "I", "tag": "PRP", "pos": "PRON", "idx": 4, "index": 1},
      {"text": "share", "lemma": "share", "tag": "VB", "pos": "VERB", "idx": 6, "index": 2},
      {"text": "your", "lemma": "your", "tag": "PRP$", "pos": "PRON", "idx": 12, "index": 3},
      {"text": "email", "lemma": "email", "tag": "NN", "pos": "NOUN", "idx": 17, "index": 4},
      {"text": "?", "lemma": "?", "tag": ".", "pos": "PUNCT", "idx": 22, "index": 5}
    ],
    [
      {"text": "Thanks", "lemma": "thank", "tag": "NNS", "pos": "NOUN", "idx": 0, "index": 0}
    ]
  ]
}`

func TestDocFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inbox.json", tagged)

	got := run(t, "doc", path)
	want := "[   1] " + classify.LabelAsking + " (1.00) ✍  Can I share your email?\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestImportAndDoc(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "inbox.json", tagged)
	db := filepath.Join(t.TempDir(), "corpus.db")

	got := run(t, "import", "-from", src, "-to", db)
	if !strings.Contains(got, "Successfully imported 1 docs") {
		t.Fatalf("unexpected import output %q", got)
	}

	got = run(t, "doc", "-d", db)
	if got != "📖 1 inbox.json \n" {
		t.Fatalf("unexpected listing %q", got)
	}

	got = run(t, "doc", "-d", db, "-format", "tsv", "1")
	if got != "1\t"+classify.LabelAsking+"\t1.0\n" {
		t.Fatalf("unexpected doc output %q", got)
	}

	got = run(t, "doc", "-d", db, "-format", "tsv", "-relevant")
	if got != "1\t"+classify.LabelAsking+"\t1.0\n" {
		t.Fatalf("unexpected relevant output %q", got)
	}
}

func TestDocRelevantNeedsSQLite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "inbox.json", tagged)

	ui, _, _ := newUI()
	if err := runCommand(context.Background(), "doc", []string{"-d", src, "-relevant"}, ui); err == nil {
		t.Fatal("expected error for -relevant on a directory")
	}
}

func TestStat(t *testing.T) {
	in := writeFile(t, t.TempDir(), "emails.txt", "Hello there\nCan I share your email?\n")

	got := run(t, "stat", in)
	if !strings.HasPrefix(got, "Num sentences 2, relevant 1, num tokens per sentence 6\n") {
		t.Fatalf("unexpected stat output %q", got)
	}

	if !strings.Contains(got, "Verb before pronoun 1, past participle 0, question mark 1") {
		t.Fatalf("unexpected signal counts %q", got)
	}
}

func TestVersion(t *testing.T) {
	got := run(t, "version")
	if !strings.HasPrefix(got, "mailshare version ") {
		t.Fatalf("got %q", got)
	}
}

func TestHelp(t *testing.T) {
	got := run(t, "help")
	if !strings.Contains(got, "classify") || !strings.Contains(got, "repl") {
		t.Fatalf("unexpected help %q", got)
	}

	got = run(t, "help", "classify")
	if !strings.Contains(got, "-no-score") {
		t.Fatalf("unexpected classify help %q", got)
	}
}

func TestParseMainArgs(t *testing.T) {
	ui, _, _ := newUI()

	if _, _, err := parseMainArgs(nil, ui); err == nil {
		t.Fatal("expected error without command")
	}

	cmd, args, err := parseMainArgs([]string{"doc", "-d", "x"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cmd != "doc" || len(args) != 2 {
		t.Fatalf("got %q %v", cmd, args)
	}
}

func TestDocRepeatedSentence(t *testing.T) {
	sentence := `[
      {"text": "Can", "lemma": "can", "tag": "MD", "pos": "AUX", "idx": 0},
      {"text": "I", "lemma": "I", "tag": "PRP", "pos": "PRON", "idx": 4},
      {"text": "share", "lemma": "share", "tag": "VB", "pos": "VERB", "idx": 6},
      {"text": "your", "lemma": "your", "tag": "PRP$", "pos": "PRON", "idx": 12},
      {"text": "email", "lemma": "email", "tag": "NN", "pos": "NOUN", "idx": 17},
      {"text": "?", "lemma": "?", "tag": ".", "pos": "PUNCT", "idx": 22}
    ]`
	doc := `{"tokens": [` + sentence + `, [{"text": "Thanks", "lemma": "thank", "tag": "NNS", "pos": "NOUN"}], ` + sentence + `]}`
	path := writeFile(t, t.TempDir(), "repeated.json", doc)

	got := run(t, "doc", "-format", "tsv", path)
	want := "1\t" + classify.LabelAsking + "\t1.0\n" +
		"3\t" + classify.LabelAsking + "\t1.0\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
