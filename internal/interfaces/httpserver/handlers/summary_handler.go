package handlers

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"paperforge/internal/domain/summary"
	"paperforge/internal/interfaces/httpserver/responses"
)

// SummaryHandler exposes HTTP entrypoints for the paper summarization API.
type SummaryHandler struct {
	service        summary.Service
	maxUploadBytes int64
	log            zerolog.Logger
}

// NewSummaryHandler constructs the handler.
func NewSummaryHandler(service summary.Service, maxUploadBytes int64, log zerolog.Logger) *SummaryHandler {
	return &SummaryHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		log:            log.With().Str("handler", "summary").Logger(),
	}
}

// SummarizeBatch handles POST /v1/papers/summarize
// Accepts one or more PDF uploads in the multipart field "files" and runs
// each through the summarization pipeline in order. Processing stops at the
// first failing file; records committed before the failure remain stored.
func (h *SummaryHandler) SummarizeBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:  "multipart form with one or more files is required",
			Detail: err.Error(),
		})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error: "at least one file is required in the 'files' field",
		})
		return
	}

	docs := make([]summary.Document, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		doc, err := h.readUpload(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:  fmt.Sprintf("invalid upload %q", header.Filename),
				Detail: err.Error(),
			})
			return
		}
		docs = append(docs, doc)
	}

	records, err := h.service.SummarizeBatch(c.Request.Context(), docs)
	if err != nil {
		responses.HandleError(c, err, "failed to summarize papers")
		return
	}

	c.JSON(http.StatusOK, responses.MapRecordsToResponse(records))
}

// List handles GET /v1/papers/summaries
func (h *SummaryHandler) List(c *gin.Context) {
	records, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list summaries")
		return
	}
	c.JSON(http.StatusOK, responses.MapRecordsToResponse(records))
}

func (h *SummaryHandler) readUpload(header *multipart.FileHeader) (summary.Document, error) {
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pdf" {
		return summary.Document{}, fmt.Errorf("only PDF files are allowed")
	}
	if header.Size > h.maxUploadBytes {
		return summary.Document{}, fmt.Errorf("file exceeds the %dMB upload limit", h.maxUploadBytes/(1024*1024))
	}

	file, err := header.Open()
	if err != nil {
		return summary.Document{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return summary.Document{}, err
	}
	if int64(len(data)) > h.maxUploadBytes {
		return summary.Document{}, fmt.Errorf("file exceeds the %dMB upload limit", h.maxUploadBytes/(1024*1024))
	}

	return summary.Document{
		Filename: header.Filename,
		Reader:   bytes.NewReader(data),
		Size:     int64(len(data)),
	}, nil
}
