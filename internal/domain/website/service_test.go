package website

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"paperforge/internal/domain/llm"
	"paperforge/internal/utils/apperrors"
)

type fakeGateway struct {
	CompleteFunc func(ctx context.Context, req llm.CompletionRequest) (string, error)
	requests     []llm.CompletionRequest
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.CompleteFunc != nil {
		return f.CompleteFunc(ctx, req)
	}
	return "", nil
}

const validModelOutput = `{
	"frontend": {
		"index_html": "<html><body></body></html>",
		"styles_css": "body { margin: 0; }",
		"script_js": "const fs = require('fs');\nconsole.log('ready');"
	},
	"backend": "from fastapi import FastAPI\napp = FastAPI()",
	"instructions": "# Run\npip install fastapi"
}`

func TestGenerate(t *testing.T) {
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return validModelOutput, nil
		},
	}
	svc := NewService(gateway, zerolog.Nop())

	codebase, err := svc.Generate(context.Background(), "a recipe sharing site")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if codebase.ProjectIdea != "a recipe sharing site" {
		t.Errorf("project idea = %q, want the input echoed", codebase.ProjectIdea)
	}
	if codebase.Frontend.IndexHTML != "<html><body></body></html>" {
		t.Errorf("index_html = %q", codebase.Frontend.IndexHTML)
	}
	if !strings.Contains(codebase.Backend, "FastAPI") {
		t.Errorf("backend = %q", codebase.Backend)
	}

	// Server-only syntax in the script is neutralized before returning.
	if strings.Contains(codebase.Frontend.ScriptJS, "const fs = require") {
		t.Errorf("require statement survived sanitization: %q", codebase.Frontend.ScriptJS)
	}
	if !strings.Contains(codebase.Frontend.ScriptJS, "console.log('ready')") {
		t.Errorf("unrelated code was altered: %q", codebase.Frontend.ScriptJS)
	}

	if len(gateway.requests) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", len(gateway.requests))
	}
	req := gateway.requests[0]
	if !req.JSONObject {
		t.Error("expected JSON object response format")
	}
	if !strings.Contains(req.Prompt, "a recipe sharing site") {
		t.Error("prompt does not carry the project idea")
	}
}

func TestGenerateGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "", &apperrors.GatewayError{Stage: req.Stage, Cause: errors.New("timeout")}
		},
	}
	svc := NewService(gateway, zerolog.Nop())

	_, err := svc.Generate(context.Background(), "idea")

	var genErr *apperrors.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	var gwErr *apperrors.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected wrapped GatewayError, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	var capturedPrompt string
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			capturedPrompt = req.Prompt
			return validModelOutput, nil
		},
	}
	svc := NewService(gateway, zerolog.Nop())

	original := Codebase{
		Frontend: Frontend{
			IndexHTML: "<html>original</html>",
			StylesCSS: "h1 { color: red; }",
			ScriptJS:  "console.log('v1');",
		},
		Backend:      "app = FastAPI()",
		Instructions: "run it",
	}

	codebase, err := svc.Edit(context.Background(), original, "make the heading blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The prompt carries the full serialized original and the request.
	serialized, _ := json.Marshal(original)
	if !strings.Contains(capturedPrompt, string(serialized)) {
		t.Error("prompt does not carry the serialized original code")
	}
	if !strings.Contains(capturedPrompt, "make the heading blue") {
		t.Error("prompt does not carry the edit request")
	}

	if codebase.ProjectIdea != "" {
		t.Errorf("edit result should not carry a project idea, got %q", codebase.ProjectIdea)
	}
	if strings.Contains(codebase.Frontend.ScriptJS, "require('fs')") {
		t.Errorf("edited script was not sanitized: %q", codebase.Frontend.ScriptJS)
	}
}

func TestDecodeCodebaseMissingKeys(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantField string
	}{
		{
			name:      "missing backend",
			raw:       `{"frontend": {"index_html": "a", "styles_css": "b", "script_js": "c"}, "instructions": "d"}`,
			wantField: "backend",
		},
		{
			name:      "missing instructions",
			raw:       `{"frontend": {"index_html": "a", "styles_css": "b", "script_js": "c"}, "backend": "d"}`,
			wantField: "instructions",
		},
		{
			name:      "missing frontend",
			raw:       `{"backend": "a", "instructions": "b"}`,
			wantField: "frontend",
		},
		{
			name:      "missing script_js inside frontend",
			raw:       `{"frontend": {"index_html": "a", "styles_css": "b"}, "backend": "c", "instructions": "d"}`,
			wantField: "frontend.script_js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCodebase(llm.StageGenerate, tt.raw)

			var malformed *apperrors.MalformedOutputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedOutputError, got %v", err)
			}
			if malformed.Field != tt.wantField {
				t.Errorf("field = %q, want %q", malformed.Field, tt.wantField)
			}
		})
	}
}

func TestDecodeCodebaseInvalidJSON(t *testing.T) {
	_, err := decodeCodebase(llm.StageGenerate, "not json at all")

	var genErr *apperrors.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}
