package storage

import (
	sent "github.com/revelaction/mailshare/sentence"
)

// Cursor for paginated lemma-based queries
type Cursor int64

// SentenceResult is a tagged sentence found in a corpus.
type SentenceResult struct {
	// ID is the key of the sentence in its corpus.
	ID     int64
	DocID  int
	Tokens []sent.Token
}

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Tokens) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences/lemmas to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
