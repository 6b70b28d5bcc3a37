package zombiezen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	sent "github.com/revelaction/mailshare/sentence"
	"github.com/revelaction/mailshare/storage"
	"zombiezen.com/go/sqlite/sqlitex"
)

func tok(text, lemma, tag, pos string) sent.Token {
	return sent.Token{Text: text, Lemma: lemma, Tag: tag, Pos: pos}
}

func newStore(t *testing.T) *DocStore {
	t.Helper()

	pool, err := NewPool(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := CreateSchemas(context.Background(), pool, DocsSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}

	return NewDocStore(pool)
}

var inbox = sent.Doc{
	Title:  "inbox",
	Labels: []string{"mail", "2024"},
	Tokens: [][]sent.Token{
		{tok("Hello", "hello", "UH", "INTJ")},
		{tok("Can", "can", "MD", "AUX"), tok("I", "I", "PRP", "PRON"), tok("share", "share", "VB", "VERB"), tok("your", "your", "PRP$", "PRON"), tok("email", "email", "NN", "NOUN")},
		{tok("I", "I", "PRP", "PRON"), tok("shared", "share", "VBD", "VERB"), tok("it", "it", "PRP", "PRON")},
		{tok("Emails", "email", "NNS", "NOUN"), tok("shared", "share", "VBN", "VERB")},
	},
}

func TestDocStoreWriteRead(t *testing.T) {
	store := newStore(t)

	if err := store.Write(inbox); err != nil {
		t.Fatalf("write: %v", err)
	}

	docs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(docs))
	}

	if docs[0].Title != "inbox" {
		t.Errorf("expected title inbox, got %q", docs[0].Title)
	}

	if diff := cmp.Diff(inbox.Labels, docs[0].Labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	if docs[0].Tokens != nil {
		t.Errorf("List must not load tokens")
	}

	doc, err := store.Read(docs[0].Id)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if diff := cmp.Diff(inbox.Tokens, doc.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDocStoreReadMissing(t *testing.T) {
	store := newStore(t)

	if _, err := store.Read(42); err == nil {
		t.Fatal("expected error for missing doc")
	}
}

func TestDocStoreFindRelevant(t *testing.T) {
	store := newStore(t)

	if err := store.Write(inbox); err != nil {
		t.Fatalf("write: %v", err)
	}

	results, err := store.FindRelevant(context.Background())
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 relevant sentences, got %d", len(results))
	}

	if diff := cmp.Diff(inbox.Tokens[1], results[0].Tokens); diff != "" {
		t.Errorf("first sentence mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(inbox.Tokens[3], results[1].Tokens); diff != "" {
		t.Errorf("second sentence mismatch (-want +got):\n%s", diff)
	}
}

func TestDocStoreFindRelevantAfterVacuum(t *testing.T) {
	store := newStore(t)

	if err := store.Write(inbox); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx := context.Background()
	conn, err := store.pool.Take(ctx)
	if err != nil {
		t.Fatalf("take: %v", err)
	}

	// a gap before the relevant sentences
	for _, q := range []string{
		"DELETE FROM sentence_lemmas WHERE sentence_id = 1",
		"DELETE FROM sentences WHERE id = 1",
		"VACUUM",
	} {
		if err := sqlitex.ExecuteTransient(conn, q, nil); err != nil {
			store.pool.Put(conn)
			t.Fatalf("%s: %v", q, err)
		}
	}
	store.pool.Put(conn)

	results, err := store.FindRelevant(ctx)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 relevant sentences, got %d", len(results))
	}

	if results[0].ID != 2 || results[1].ID != 4 {
		t.Errorf("sentence ids changed: %d, %d", results[0].ID, results[1].ID)
	}

	if diff := cmp.Diff(inbox.Tokens[1], results[0].Tokens); diff != "" {
		t.Errorf("first sentence mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(inbox.Tokens[3], results[1].Tokens); diff != "" {
		t.Errorf("second sentence mismatch (-want +got):\n%s", diff)
	}
}

func TestDocStoreFindCandidatesCursor(t *testing.T) {
	store := newStore(t)

	if err := store.Write(inbox); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx := context.Background()
	lemmas := []string{"share"}

	var got [][]sent.Token
	var cursor storage.Cursor
	for i := 0; i < 10; i++ {
		page, next, err := store.FindCandidates(ctx, lemmas, cursor, 1)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(page) == 0 {
			break
		}
		if next <= cursor {
			t.Fatalf("cursor did not advance: %d -> %d", cursor, next)
		}
		got = append(got, page[0].Tokens)
		cursor = next
	}

	want := [][]sent.Token{inbox.Tokens[1], inbox.Tokens[2], inbox.Tokens[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestDocStoreFindRelevantCanceled(t *testing.T) {
	store := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.FindRelevant(ctx); err == nil {
		t.Fatal("expected error on canceled context")
	}
}
