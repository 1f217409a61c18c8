package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"paperforge/internal/domain/website"
	"paperforge/internal/interfaces/httpserver/requests"
	"paperforge/internal/interfaces/httpserver/responses"
)

// WebsiteHandler exposes HTTP entrypoints for codebase generation and editing.
type WebsiteHandler struct {
	service website.Service
	log     zerolog.Logger
}

// NewWebsiteHandler constructs the handler.
func NewWebsiteHandler(service website.Service, log zerolog.Logger) *WebsiteHandler {
	return &WebsiteHandler{
		service: service,
		log:     log.With().Str("handler", "website").Logger(),
	}
}

// Generate handles POST /v1/websites/generate
func (h *WebsiteHandler) Generate(c *gin.Context) {
	var req requests.GenerateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:  "request body must include a project 'idea'",
			Detail: err.Error(),
		})
		return
	}

	codebase, err := h.service.Generate(c.Request.Context(), req.Idea)
	if err != nil {
		responses.HandleError(c, err, "failed to generate website code")
		return
	}

	c.JSON(http.StatusOK, codebase)
}

// Edit handles POST /v1/websites/edit
func (h *WebsiteHandler) Edit(c *gin.Context) {
	var req requests.EditWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:  "request body must include 'original_code' and 'edit_request'",
			Detail: err.Error(),
		})
		return
	}

	codebase, err := h.service.Edit(c.Request.Context(), *req.OriginalCode, req.EditRequest)
	if err != nil {
		responses.HandleError(c, err, "failed to edit website code")
		return
	}

	c.JSON(http.StatusOK, codebase)
}
