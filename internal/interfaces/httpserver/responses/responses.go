package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperforge/internal/domain/summary"
	"paperforge/internal/utils/apperrors"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// SummaryResponse is the HTTP shape of one summary record.
type SummaryResponse struct {
	ID           string   `json:"id"`
	Filename     string   `json:"filename"`
	Summary      string   `json:"summary"`
	Conclusion   string   `json:"conclusion"`
	ProjectIdeas []string `json:"project_ideas"`
}

// MapRecordToResponse converts a domain record to its HTTP shape.
func MapRecordToResponse(record summary.Record) SummaryResponse {
	ideas := record.ProjectIdeas
	if ideas == nil {
		ideas = []string{}
	}
	return SummaryResponse{
		ID:           record.ID,
		Filename:     record.Filename,
		Summary:      record.Summary,
		Conclusion:   record.Conclusion,
		ProjectIdeas: ideas,
	}
}

// MapRecordsToResponse converts a slice of domain records.
func MapRecordsToResponse(records []summary.Record) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(records))
	for _, record := range records {
		out = append(out, MapRecordToResponse(record))
	}
	return out
}

// HandleError translates pipeline errors into HTTP responses. Extraction
// failures are bad input; everything else is an internal failure.
func HandleError(c *gin.Context, err error, message string) {
	var extractionErr *apperrors.ExtractionError
	if errors.As(err, &extractionErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error:  message,
			Detail: err.Error(),
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:  message,
		Detail: err.Error(),
	})
}
