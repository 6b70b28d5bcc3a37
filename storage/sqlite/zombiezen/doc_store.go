package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/revelaction/mailshare/classify"
	sent "github.com/revelaction/mailshare/sentence"
	"github.com/revelaction/mailshare/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// pageSize is the number of candidates fetched per query by FindRelevant.
const pageSize = 500

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := sent.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			}
			if labels := stmt.ColumnText(2); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			if labels := stmt.ColumnText(1); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY id", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var tokens []sent.Token
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &tokens); err != nil {
				return err
			}
			doc.Tokens = append(doc.Tokens, tokens)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// FindCandidates returns at most limit sentences, after the cursor, whose
// lemma index holds ALL the given lemmas. The returned cursor is the id
// of the last sentence, or after if none was found.
func (h *DocStore) FindCandidates(ctx context.Context, lemmas []string, after storage.Cursor, limit int) ([]storage.SentenceResult, storage.Cursor, error) {
	if len(lemmas) == 0 {
		return nil, after, nil
	}

	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, after, err
	}
	defer h.pool.Put(conn)

	// INTERSECT keeps only ids holding every lemma, each once.
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT id, doc_id, data FROM sentences WHERE id IN (")
	for i, lemma := range lemmas {
		if i > 0 {
			sb.WriteString(" INTERSECT ")
		}
		sb.WriteString("SELECT sentence_id FROM sentence_lemmas WHERE lemma = ? AND sentence_id > ?")
		args = append(args, lemma, int64(after))
	}
	sb.WriteString(") ORDER BY id LIMIT ?")
	args = append(args, limit)

	var results []storage.SentenceResult
	cursor := after
	err = sqlitex.Execute(conn, sb.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			res := storage.SentenceResult{
				ID:    stmt.ColumnInt64(0),
				DocID: stmt.ColumnInt(1),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &res.Tokens); err != nil {
				return fmt.Errorf("sentence %d: %w", res.ID, err)
			}
			cursor = storage.Cursor(res.ID)
			results = append(results, res)
			return nil
		},
	})
	if err != nil {
		return nil, after, err
	}

	return results, cursor, nil
}

// FindRelevant returns every sentence of the corpus that mentions both
// "share" and "email", in insertion order.
func (h *DocStore) FindRelevant(ctx context.Context) ([]storage.SentenceResult, error) {
	lemmas := []string{classify.LemmaShare, classify.LemmaEmail}

	var all []storage.SentenceResult
	var cursor storage.Cursor
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, next, err := h.FindCandidates(ctx, lemmas, cursor, pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
		cursor = next
	}
}

// Write stores doc, its sentences and their lemma index in one savepoint.
func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []any{doc.Title, strings.Join(doc.Labels, ",")},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for _, tokens := range doc.Tokens {
		data, err := json.Marshal(tokens)
		if err != nil {
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []any{docID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentenceID := conn.LastInsertRowID()

		for lemma := range sent.Lemmas(tokens) {
			if lemma == "" {
				continue
			}
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_id) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []any{lemma, sentenceID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return nil
}
