package summary

import "context"

// Repository exposes data access for summary records. The store is
// append-only: Insert and bulk read are the only operations.
type Repository interface {
	// Insert persists one record, assigning a fresh ID when empty.
	// Each insert commits independently of the rest of its batch.
	Insert(ctx context.Context, record *Record) error
	// ListAll returns every stored record ordered by filename.
	ListAll(ctx context.Context) ([]Record, error)
}

// TextExtractor converts a PDF byte stream into page-ordered plain text.
type TextExtractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}
