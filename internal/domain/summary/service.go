package summary

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"paperforge/internal/domain/llm"
	"paperforge/internal/infrastructure/metrics"
	"paperforge/internal/utils/apperrors"
)

const (
	conclusionMarker   = "Conclusion:"
	conclusionFallback = "No specific conclusion was generated."

	summaryPrompt = "Summarize the following research paper text (max 200 words) and provide a separate conclusion. Separate the summary and conclusion with the exact phrase 'Conclusion:'.\n\nText: "
	ideasPrompt   = "Based on the following research summary, list 3-5 innovative and feasible website project ideas. Each idea should be on a new line and described in a single, concise sentence.\n\nSummary:\n"
)

// Service runs the summarization pipeline: extract, summarize, derive
// project ideas, persist.
type Service interface {
	// ProcessDocument runs the full pipeline for one upload and commits
	// the resulting record.
	ProcessDocument(ctx context.Context, doc Document) (Record, error)
	// SummarizeBatch processes documents in order and stops at the first
	// failure. Records committed before the failure remain stored.
	SummarizeBatch(ctx context.Context, docs []Document) ([]Record, error)
	// ListAll returns every stored record ordered by filename.
	ListAll(ctx context.Context) ([]Record, error)
}

type service struct {
	extractor TextExtractor
	gateway   llm.Gateway
	repo      Repository
	textCap   int
	log       zerolog.Logger
}

// NewService wires the pipeline with its collaborators. textCap bounds how
// much paper text reaches the model; content beyond it is never prompted.
func NewService(extractor TextExtractor, gateway llm.Gateway, repo Repository, textCap int, log zerolog.Logger) Service {
	return &service{
		extractor: extractor,
		gateway:   gateway,
		repo:      repo,
		textCap:   textCap,
		log:       log.With().Str("component", "summary-service").Logger(),
	}
}

func (s *service) ProcessDocument(ctx context.Context, doc Document) (Record, error) {
	text, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		metrics.DocumentsProcessed.WithLabelValues("extraction_failed").Inc()
		return Record{}, err
	}
	s.log.Info().Str("filename", doc.Filename).Int("chars", len(text)).Msg("extracted paper text")

	summaryText, conclusion, err := s.generateSummary(ctx, text)
	if err != nil {
		metrics.DocumentsProcessed.WithLabelValues("generation_failed").Inc()
		return Record{}, err
	}

	ideas, err := s.generateIdeas(ctx, summaryText)
	if err != nil {
		metrics.DocumentsProcessed.WithLabelValues("generation_failed").Inc()
		return Record{}, err
	}

	record := Record{
		Filename:     doc.Filename,
		Summary:      summaryText,
		Conclusion:   conclusion,
		ProjectIdeas: ideas,
	}
	if err := s.repo.Insert(ctx, &record); err != nil {
		metrics.DocumentsProcessed.WithLabelValues("storage_failed").Inc()
		return Record{}, err
	}

	metrics.DocumentsProcessed.WithLabelValues("success").Inc()
	s.log.Info().Str("filename", doc.Filename).Str("record_id", record.ID).Int("ideas", len(ideas)).Msg("document summarized")
	return record, nil
}

func (s *service) SummarizeBatch(ctx context.Context, docs []Document) ([]Record, error) {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		record, err := s.ProcessDocument(ctx, doc)
		if err != nil {
			s.log.Error().Err(err).Str("filename", doc.Filename).Int("committed", len(records)).Msg("batch aborted")
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *service) ListAll(ctx context.Context) ([]Record, error) {
	return s.repo.ListAll(ctx)
}

// generateSummary asks the model for a summary plus conclusion separated by
// the literal marker phrase.
func (s *service) generateSummary(ctx context.Context, text string) (string, string, error) {
	output, err := s.gateway.Complete(ctx, llm.CompletionRequest{
		Stage:       llm.StageSummarize,
		Prompt:      summaryPrompt,
		Input:       text,
		InputLimit:  s.textCap,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", "", &apperrors.GenerationError{Stage: llm.StageSummarize, Cause: err}
	}

	summaryText, conclusion := splitConclusion(output)
	return summaryText, conclusion, nil
}

// generateIdeas derives 3-5 one-line project ideas from the summary. The
// count is not enforced; whatever survives line filtering is accepted.
func (s *service) generateIdeas(ctx context.Context, summaryText string) ([]string, error) {
	output, err := s.gateway.Complete(ctx, llm.CompletionRequest{
		Stage:       llm.StageIdeas,
		Prompt:      ideasPrompt,
		Input:       summaryText,
		MaxTokens:   300,
		Temperature: 0.8,
	})
	if err != nil {
		return nil, &apperrors.GenerationError{Stage: llm.StageIdeas, Cause: err}
	}
	return parseIdeas(output), nil
}

// splitConclusion splits model output on the first marker occurrence.
// A missing marker is a degraded success: the whole output becomes the
// summary and the conclusion falls back to a fixed placeholder.
func splitConclusion(output string) (string, string) {
	parts := strings.SplitN(output, conclusionMarker, 2)
	summaryText := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return summaryText, conclusionFallback
	}
	return summaryText, strings.TrimSpace(parts[1])
}

// parseIdeas splits raw output into trimmed non-empty lines, preserving
// model order.
func parseIdeas(raw string) []string {
	var ideas []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ideas = append(ideas, line)
	}
	return ideas
}
