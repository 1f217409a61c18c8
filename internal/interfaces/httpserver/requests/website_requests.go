package requests

import "paperforge/internal/domain/website"

// GenerateWebsiteRequest models POST /v1/websites/generate input.
type GenerateWebsiteRequest struct {
	Idea string `json:"idea" binding:"required"`
}

// EditWebsiteRequest models POST /v1/websites/edit input.
type EditWebsiteRequest struct {
	OriginalCode *website.Codebase `json:"original_code" binding:"required"`
	EditRequest  string            `json:"edit_request" binding:"required"`
}
