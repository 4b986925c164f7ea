// Package parser runs the document parsing pipeline: text extraction, the
// remote semantic parse with retry, and local contact-field reconciliation.
package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
	"github.com/mazohq/beam-parser/internal/fields"
	"github.com/mazohq/beam-parser/internal/llm"
)

// TextExtractor turns a raw document into plain text.
type TextExtractor interface {
	Text(doc entity.RawDocument) (string, error)
}

// Service parses single documents and batches of them.
type Service struct {
	cfg       common.ParserConfig
	extractor TextExtractor
	remote    llm.FieldExtractor
	logger    *slog.Logger
}

func NewService(cfg common.ParserConfig, extractor TextExtractor, remote llm.FieldExtractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 10
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	return &Service{cfg: cfg, extractor: extractor, remote: remote, logger: logger}
}

// ParseJobDescription parses one JD file.
func (s *Service) ParseJobDescription(ctx context.Context, doc entity.RawDocument) (entity.ParsedDocument, error) {
	parsed, err := s.parseOne(ctx, doc, llm.KindJobDescription)
	return parsed.ParsedDocument, err
}

// ParseResume parses one resume file. Locally extracted name/email/phone take
// precedence over the remote values when non-empty.
func (s *Service) ParseResume(ctx context.Context, doc entity.RawDocument) (entity.ParsedResume, error) {
	return s.parseOne(ctx, doc, llm.KindResume)
}

func (s *Service) parseOne(ctx context.Context, doc entity.RawDocument, kind llm.DocumentKind) (entity.ParsedResume, error) {
	text, err := s.extractor.Text(doc)
	if err != nil {
		return entity.ParsedResume{}, err
	}

	remote, err := s.extractWithRetry(ctx, text, kind)
	if err != nil {
		return entity.ParsedResume{}, common.NewAppError("REMOTE_PARSE_FAILED", doc.Filename,
			fmt.Errorf("%w: %w", common.ErrRemoteParse, err))
	}

	parsed := entity.ParsedResume{
		ParsedDocument: entity.ParsedDocument{
			Title:            remote.Title,
			Skills:           remote.Skills,
			Experience:       remote.Experience,
			Responsibilities: remote.Responsibilities,
		},
	}
	if parsed.Skills == nil {
		parsed.Skills = []string{}
	}
	if kind == llm.KindResume {
		parsed.Responsibilities = []string{}
		parsed.FileName = doc.Filename
		parsed.Education = remote.Education
		parsed.Name = firstNonEmpty(fields.Name(text), remote.Name)
		parsed.Email = firstNonEmpty(fields.Email(text), remote.Email)
		parsed.Phone = firstNonEmpty(fields.Phone(text), remote.Phone)
	} else if parsed.Responsibilities == nil {
		parsed.Responsibilities = []string{}
	}
	return parsed, nil
}

// extractWithRetry issues the remote parse up to RetryAttempts times, waiting
// 2^attempt * RetryBaseDelay between attempts. The remote call carries no
// idempotency key; it is retried verbatim and the last error is surfaced.
func (s *Service) extractWithRetry(ctx context.Context, text string, kind llm.DocumentKind) (llm.DocumentFields, error) {
	req := llm.ParseRequest{DocumentText: text, DocumentType: kind}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.RetryAttempts; attempt++ {
		result, _, err := s.remote.ExtractFields(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err
		s.logger.Warn("parse.remote.attempt_failed",
			"attempt", attempt, "max_attempts", s.cfg.RetryAttempts, "error", err)

		if attempt == s.cfg.RetryAttempts {
			break
		}
		delay := s.cfg.RetryBaseDelay * (1 << attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return llm.DocumentFields{}, ctx.Err()
		}
	}
	return llm.DocumentFields{}, lastErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
