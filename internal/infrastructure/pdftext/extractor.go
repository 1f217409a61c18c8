// Package pdftext extracts plain text from uploaded PDF streams.
package pdftext

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"paperforge/internal/domain/summary"
	"paperforge/internal/utils/apperrors"
)

// Extractor converts PDF bytes into page-ordered plain text.
type Extractor struct {
	log zerolog.Logger
}

// New constructs the extractor.
func New(log zerolog.Logger) *Extractor {
	return &Extractor{
		log: log.With().Str("component", "pdf-extractor").Logger(),
	}
}

// Extract concatenates text page by page. Pages that yield nothing
// contribute an empty string rather than failing the document; a document
// whose total text is empty or whitespace-only fails with ExtractionError,
// as does a structurally malformed PDF.
func (e *Extractor) Extract(ctx context.Context, doc summary.Document) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &apperrors.ExtractionError{
				Filename: doc.Filename,
				Reason:   "malformed PDF structure",
				Cause:    fmt.Errorf("%v", r),
			}
		}
	}()

	reader, err := pdf.NewReader(doc.Reader, doc.Size)
	if err != nil {
		return "", &apperrors.ExtractionError{
			Filename: doc.Filename,
			Reason:   "malformed PDF structure",
			Cause:    err,
		}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// Unreadable page, the document may still succeed.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText)
	}

	return assemble(doc.Filename, pages)
}

// assemble joins page texts in page order and rejects documents with no
// extractable text (fully image-based or empty PDFs).
func assemble(filename string, pages []string) (string, error) {
	joined := strings.Join(pages, "")
	if strings.TrimSpace(joined) == "" {
		return "", &apperrors.ExtractionError{
			Filename: filename,
			Reason:   "no text could be extracted; the file may be image-based or empty",
		}
	}
	return joined, nil
}

var _ summary.TextExtractor = (*Extractor)(nil)
