package summary

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"paperforge/internal/domain/llm"
	"paperforge/internal/utils/apperrors"
)

type fakeExtractor struct {
	ExtractFunc func(ctx context.Context, doc Document) (string, error)
}

func (f *fakeExtractor) Extract(ctx context.Context, doc Document) (string, error) {
	if f.ExtractFunc != nil {
		return f.ExtractFunc(ctx, doc)
	}
	return "extracted text", nil
}

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

type fakeRepo struct {
	InsertFunc func(ctx context.Context, record *Record) error
	inserted   []Record
}

func (f *fakeRepo) Insert(ctx context.Context, record *Record) error {
	if f.InsertFunc != nil {
		if err := f.InsertFunc(ctx, record); err != nil {
			return err
		}
	}
	if record.ID == "" {
		record.ID = "rec-" + record.Filename
	}
	f.inserted = append(f.inserted, *record)
	return nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(f.inserted))
	copy(out, f.inserted)
	return out, nil
}

func TestSplitConclusion(t *testing.T) {
	tests := []struct {
		name           string
		output         string
		wantSummary    string
		wantConclusion string
	}{
		{
			name:           "marker present",
			output:         "A B Conclusion: C D",
			wantSummary:    "A B",
			wantConclusion: "C D",
		},
		{
			name:           "marker absent falls back to placeholder",
			output:         "just a summary with no marker",
			wantSummary:    "just a summary with no marker",
			wantConclusion: conclusionFallback,
		},
		{
			name:           "splits on first marker only",
			output:         "part one Conclusion: part two Conclusion: part three",
			wantSummary:    "part one",
			wantConclusion: "part two Conclusion: part three",
		},
		{
			name:           "marker at start yields empty summary",
			output:         "Conclusion: only a conclusion",
			wantSummary:    "",
			wantConclusion: "only a conclusion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, conclusion := splitConclusion(tt.output)
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
			if conclusion != tt.wantConclusion {
				t.Errorf("conclusion = %q, want %q", conclusion, tt.wantConclusion)
			}
		})
	}
}

func TestParseIdeas(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "blank lines dropped, order preserved",
			raw:  "Idea1\n\nIdea2\nIdea3",
			want: []string{"Idea1", "Idea2", "Idea3"},
		},
		{
			name: "lines trimmed",
			raw:  "  first idea  \n\t second idea \n",
			want: []string{"first idea", "second idea"},
		},
		{
			name: "whitespace only yields nothing",
			raw:  "  \n\t\n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseIdeas(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseIdeas(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProcessDocumentPipeline(t *testing.T) {
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			switch req.Stage {
			case llm.StageSummarize:
				return "the summary Conclusion: the conclusion", nil
			case llm.StageIdeas:
				return "Build a dashboard\nBuild a chatbot\nBuild a search tool", nil
			}
			t.Fatalf("unexpected stage %q", req.Stage)
			return "", nil
		},
	}
	repo := &fakeRepo{}
	svc := NewService(&fakeExtractor{}, gateway, repo, 4000, zerolog.Nop())

	record, err := svc.ProcessDocument(context.Background(), Document{Filename: "paper.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Summary != "the summary" {
		t.Errorf("summary = %q", record.Summary)
	}
	if record.Conclusion != "the conclusion" {
		t.Errorf("conclusion = %q", record.Conclusion)
	}
	want := []string{"Build a dashboard", "Build a chatbot", "Build a search tool"}
	if !reflect.DeepEqual(record.ProjectIdeas, want) {
		t.Errorf("ideas = %v, want %v", record.ProjectIdeas, want)
	}
	if record.ID == "" {
		t.Error("expected record ID assigned on insert")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 committed record, got %d", len(repo.inserted))
	}

	// The summarize stage carries the text cap; the ideas stage prompts the
	// summary unbounded.
	if len(gateway.requests) != 2 {
		t.Fatalf("expected 2 gateway calls, got %d", len(gateway.requests))
	}
	if gateway.requests[0].InputLimit != 4000 {
		t.Errorf("summarize input limit = %d, want 4000", gateway.requests[0].InputLimit)
	}
	if gateway.requests[1].InputLimit != 0 {
		t.Errorf("ideas input limit = %d, want 0", gateway.requests[1].InputLimit)
	}
	if gateway.requests[1].Input != "the summary" {
		t.Errorf("ideas stage input = %q, want the parsed summary", gateway.requests[1].Input)
	}
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	extractor := &fakeExtractor{
		ExtractFunc: func(ctx context.Context, doc Document) (string, error) {
			return "", &apperrors.ExtractionError{Filename: doc.Filename, Reason: "no text"}
		},
	}
	repo := &fakeRepo{}
	svc := NewService(extractor, &fakeGateway{}, repo, 4000, zerolog.Nop())

	_, err := svc.ProcessDocument(context.Background(), Document{Filename: "scan.pdf"})

	var extractionErr *apperrors.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Errorf("expected no committed records, got %d", len(repo.inserted))
	}
}

func TestProcessDocumentGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "", &apperrors.GatewayError{Stage: req.Stage, Cause: errors.New("provider down")}
		},
	}
	svc := NewService(&fakeExtractor{}, gateway, &fakeRepo{}, 4000, zerolog.Nop())

	_, err := svc.ProcessDocument(context.Background(), Document{Filename: "paper.pdf"})

	var genErr *apperrors.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != llm.StageSummarize {
		t.Errorf("stage = %q, want %q", genErr.Stage, llm.StageSummarize)
	}
}

func TestSummarizeBatchStopsAtFirstFailureKeepingCommitted(t *testing.T) {
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "summary Conclusion: conclusion", nil
		},
	}
	extractor := &fakeExtractor{
		ExtractFunc: func(ctx context.Context, doc Document) (string, error) {
			if doc.Filename == "bad.pdf" {
				return "", &apperrors.ExtractionError{Filename: doc.Filename, Reason: "no text"}
			}
			return "text", nil
		},
	}
	repo := &fakeRepo{}
	svc := NewService(extractor, gateway, repo, 4000, zerolog.Nop())

	docs := []Document{
		{Filename: "first.pdf"},
		{Filename: "bad.pdf"},
		{Filename: "never-reached.pdf"},
	}
	records, err := svc.SummarizeBatch(context.Background(), docs)
	if err == nil {
		t.Fatal("expected batch to fail")
	}
	if records != nil {
		t.Errorf("expected nil records on failure, got %v", records)
	}

	// The document committed before the failure stays stored.
	stored, listErr := svc.ListAll(context.Background())
	if listErr != nil {
		t.Fatalf("unexpected list error: %v", listErr)
	}
	if len(stored) != 1 || stored[0].Filename != "first.pdf" {
		t.Errorf("stored = %v, want only first.pdf", stored)
	}
}

func TestSummarizeBatchAllSucceed(t *testing.T) {
	gateway := &fakeGateway{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			if req.Stage == llm.StageIdeas {
				return "Idea A\nIdea B\nIdea C", nil
			}
			return "summary Conclusion: conclusion", nil
		},
	}
	repo := &fakeRepo{}
	svc := NewService(&fakeExtractor{}, gateway, repo, 4000, zerolog.Nop())

	records, err := svc.SummarizeBatch(context.Background(), []Document{
		{Filename: "a.pdf"},
		{Filename: "b.pdf"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Filename != "a.pdf" || records[1].Filename != "b.pdf" {
		t.Errorf("records out of order: %v", records)
	}
}
