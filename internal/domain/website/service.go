package website

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"paperforge/internal/domain/llm"
	"paperforge/internal/infrastructure/metrics"
	"paperforge/internal/utils/apperrors"
)

const generatePromptFmt = `
Generate a complete, functional, and well-commented web application based on the following idea.

**Project Idea:** %s

**Requirements:**
1.  **Frontend (HTML/CSS/JS):**
    -   "index.html": A well-structured and semantic HTML file using Tailwind CSS classes for styling.
    -   "styles.css": A separate CSS file for any custom styles that go beyond Tailwind's utilities (e.g., complex animations).
    -   "script.js": A single, self-contained JavaScript file using ES Modules. **Implement the actual application logic**, including DOM manipulation and making "fetch" calls to the backend API. Add comments explaining the code's functionality. The code should be immediately runnable, not just a placeholder.

2.  **Backend (FastAPI):**
    -   "app.py": A functional FastAPI application.
    -   **Implement the actual backend logic for the API endpoints.** If the idea is a "Text Summarizer", the endpoint should actually perform summarization. Add placeholder logic only if the task is impossible (e.g., requires a real database).
    -   Include robust input validation with Pydantic and clear error handling.

3.  **Instructions:**
    -   A clear Markdown string explaining the project, its dependencies, and how to run it.

**Output Format:**
Return a single, valid JSON object with the following keys: "frontend" (an object with "index_html", "styles_css", "script_js"), "backend", "instructions".
`

const editPromptFmt = `
Given this website's source code and an edit request, modify the code to implement the change. Return the complete, updated code in the same JSON format. Ensure the logic remains functional and well-commented.

**Original Code:**
%s

**Edit Request:**
%s
`

// Service produces and mutates website codebases through the model gateway.
type Service interface {
	// Generate turns one project idea into a sanitized codebase with the
	// idea echoed back on the result.
	Generate(ctx context.Context, idea string) (Codebase, error)
	// Edit replaces the given codebase wholesale according to the edit
	// request. No field is guaranteed to survive unchanged.
	Edit(ctx context.Context, original Codebase, editRequest string) (Codebase, error)
}

type service struct {
	gateway llm.Gateway
	log     zerolog.Logger
}

// NewService wires the website code service with the model gateway.
func NewService(gateway llm.Gateway, log zerolog.Logger) Service {
	return &service{
		gateway: gateway,
		log:     log.With().Str("component", "website-service").Logger(),
	}
}

func (s *service) Generate(ctx context.Context, idea string) (Codebase, error) {
	s.log.Info().Str("idea", idea).Msg("generating website code")

	output, err := s.gateway.Complete(ctx, llm.CompletionRequest{
		Stage:       llm.StageGenerate,
		Prompt:      fmt.Sprintf(generatePromptFmt, idea),
		MaxTokens:   4096,
		Temperature: 0.5,
		JSONObject:  true,
	})
	if err != nil {
		metrics.Generations.WithLabelValues("generate", "failed").Inc()
		return Codebase{}, &apperrors.GenerationError{Stage: llm.StageGenerate, Cause: err}
	}

	codebase, err := decodeCodebase(llm.StageGenerate, output)
	if err != nil {
		metrics.Generations.WithLabelValues("generate", "failed").Inc()
		return Codebase{}, err
	}

	codebase.Frontend.ScriptJS = SanitizeScript(codebase.Frontend.ScriptJS)
	codebase.ProjectIdea = idea
	metrics.Generations.WithLabelValues("generate", "success").Inc()
	return codebase, nil
}

func (s *service) Edit(ctx context.Context, original Codebase, editRequest string) (Codebase, error) {
	s.log.Info().Str("edit_request", editRequest).Msg("editing website code")

	// The model sees the complete prior state, not a diff.
	serialized, err := json.Marshal(original)
	if err != nil {
		return Codebase{}, &apperrors.GenerationError{Stage: llm.StageEdit, Cause: err}
	}

	output, err := s.gateway.Complete(ctx, llm.CompletionRequest{
		Stage:       llm.StageEdit,
		Prompt:      fmt.Sprintf(editPromptFmt, serialized, editRequest),
		MaxTokens:   4096,
		Temperature: 0.5,
		JSONObject:  true,
	})
	if err != nil {
		metrics.Generations.WithLabelValues("edit", "failed").Inc()
		return Codebase{}, &apperrors.GenerationError{Stage: llm.StageEdit, Cause: err}
	}

	codebase, err := decodeCodebase(llm.StageEdit, output)
	if err != nil {
		metrics.Generations.WithLabelValues("edit", "failed").Inc()
		return Codebase{}, err
	}

	codebase.Frontend.ScriptJS = SanitizeScript(codebase.Frontend.ScriptJS)
	metrics.Generations.WithLabelValues("edit", "success").Inc()
	return codebase, nil
}

// decodeCodebase enforces the required output shape. Missing keys surface as
// a MalformedOutputError wrapped in the stage's GenerationError; there is no
// schema repair attempt.
func decodeCodebase(stage, raw string) (Codebase, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return Codebase{}, &apperrors.GenerationError{Stage: stage, Cause: err}
	}

	for _, key := range []string{"frontend", "backend", "instructions"} {
		if _, ok := root[key]; !ok {
			return Codebase{}, &apperrors.GenerationError{Stage: stage, Cause: &apperrors.MalformedOutputError{Field: key}}
		}
	}

	var frontend map[string]json.RawMessage
	if err := json.Unmarshal(root["frontend"], &frontend); err != nil {
		return Codebase{}, &apperrors.GenerationError{Stage: stage, Cause: err}
	}
	for _, key := range []string{"index_html", "styles_css", "script_js"} {
		if _, ok := frontend[key]; !ok {
			return Codebase{}, &apperrors.GenerationError{Stage: stage, Cause: &apperrors.MalformedOutputError{Field: "frontend." + key}}
		}
	}

	var codebase Codebase
	fields := []struct {
		raw  json.RawMessage
		dest *string
		name string
	}{
		{frontend["index_html"], &codebase.Frontend.IndexHTML, "frontend.index_html"},
		{frontend["styles_css"], &codebase.Frontend.StylesCSS, "frontend.styles_css"},
		{frontend["script_js"], &codebase.Frontend.ScriptJS, "frontend.script_js"},
		{root["backend"], &codebase.Backend, "backend"},
		{root["instructions"], &codebase.Instructions, "instructions"},
	}
	for _, f := range fields {
		if err := json.Unmarshal(f.raw, f.dest); err != nil {
			return Codebase{}, &apperrors.GenerationError{Stage: stage, Cause: &apperrors.MalformedOutputError{Field: f.name}}
		}
	}

	return codebase, nil
}
