package handlers

import (
	"github.com/rs/zerolog"

	"paperforge/internal/domain/summary"
	"paperforge/internal/domain/website"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Summary *SummaryHandler
	Website *WebsiteHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(summaryService summary.Service, websiteService website.Service, maxUploadBytes int64, log zerolog.Logger) *Provider {
	return &Provider{
		Summary: NewSummaryHandler(summaryService, maxUploadBytes, log),
		Website: NewWebsiteHandler(websiteService, log),
	}
}
