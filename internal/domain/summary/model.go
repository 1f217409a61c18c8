package summary

import "io"

// Record is the persisted outcome of summarizing one uploaded paper.
// Records are immutable once created; there is no update or delete path.
type Record struct {
	ID           string   `json:"id"`
	Filename     string   `json:"filename"`
	Summary      string   `json:"summary"`
	Conclusion   string   `json:"conclusion"`
	ProjectIdeas []string `json:"project_ideas"`
}

// Document is a transient upload handed to the pipeline. It is discarded
// after the run; only the derived Record survives.
type Document struct {
	Filename string
	Reader   io.ReaderAt
	Size     int64
}
