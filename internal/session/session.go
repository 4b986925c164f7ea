// Package session keeps the in-memory working set of one matching session:
// the parsed job descriptions and the candidates scored against them.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
	"github.com/mazohq/beam-parser/internal/match"
	"github.com/mazohq/beam-parser/internal/parser"
)

// Parser is the slice of the parsing service the session needs.
type Parser interface {
	ParseJobDescriptions(ctx context.Context, docs []entity.RawDocument, onProgress parser.ProgressFunc) ([]entity.ParsedDocument, parser.BatchStats)
	ParseResumes(ctx context.Context, docs []entity.RawDocument, onProgress parser.ProgressFunc) ([]entity.ParsedResume, parser.BatchStats)
}

// UploadSummary reports the outcome of one upload batch.
type UploadSummary struct {
	Accepted int `json:"accepted"`
	Failed   int `json:"failed"`
	Total    int `json:"total"`
}

// Session is safe for concurrent use. Caps are enforced on the raw file count
// before any parsing starts; a capped upload is rejected in full and the
// session is left unchanged.
type Session struct {
	mu         sync.Mutex
	cfg        common.SessionConfig
	parser     Parser
	logger     *slog.Logger
	jds        []entity.ParsedDocument
	candidates []entity.Candidate
}

func New(cfg common.SessionConfig, p Parser, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxJobDescriptions <= 0 {
		cfg.MaxJobDescriptions = 10
	}
	if cfg.MaxResumes <= 0 {
		cfg.MaxResumes = 25
	}
	return &Session{cfg: cfg, parser: p, logger: logger}
}

// AddJobDescriptions parses a batch of JD files and appends the valid results.
// A JD is valid when it has a title and at least one skill; invalid parses are
// dropped and counted as failures.
func (s *Session) AddJobDescriptions(ctx context.Context, docs []entity.RawDocument, onProgress parser.ProgressFunc) (UploadSummary, error) {
	s.mu.Lock()
	current := len(s.jds)
	s.mu.Unlock()

	if current+len(docs) > s.cfg.MaxJobDescriptions {
		return UploadSummary{}, common.CapExceededError("job descriptions", s.cfg.MaxJobDescriptions, current, len(docs))
	}

	parsed, stats := s.parser.ParseJobDescriptions(ctx, docs, onProgress)

	valid := make([]entity.ParsedDocument, 0, len(parsed))
	for _, jd := range parsed {
		if jd.Title == "" || len(jd.Skills) == 0 {
			stats.Failed++
			stats.Succeeded--
			s.logger.Warn("session.jd.invalid", "title", jd.Title, "skills", len(jd.Skills))
			continue
		}
		valid = append(valid, jd)
	}

	// The pre-parse check is advisory only; a concurrent upload may have
	// landed while this one was parsing. The append re-validates under the
	// same lock so the cap can never be exceeded.
	s.mu.Lock()
	if len(s.jds)+len(valid) > s.cfg.MaxJobDescriptions {
		current := len(s.jds)
		s.mu.Unlock()
		return UploadSummary{}, common.CapExceededError("job descriptions", s.cfg.MaxJobDescriptions, current, len(valid))
	}
	s.jds = append(s.jds, valid...)
	total := len(s.jds)
	s.mu.Unlock()

	s.logger.Info("session.jd.added", "accepted", len(valid), "failed", stats.Failed, "session_total", total)
	return UploadSummary{Accepted: len(valid), Failed: stats.Failed, Total: stats.Total}, nil
}

// AddResumes parses a batch of resume files and scores each successful parse
// against the job descriptions present at that moment. Candidates keep their
// scores when JDs are added later.
func (s *Session) AddResumes(ctx context.Context, docs []entity.RawDocument, onProgress parser.ProgressFunc) (UploadSummary, error) {
	s.mu.Lock()
	current := len(s.candidates)
	s.mu.Unlock()

	if current+len(docs) > s.cfg.MaxResumes {
		return UploadSummary{}, common.CapExceededError("resumes", s.cfg.MaxResumes, current, len(docs))
	}

	parsed, stats := s.parser.ParseResumes(ctx, docs, onProgress)

	s.mu.Lock()
	jds := make([]entity.ParsedDocument, len(s.jds))
	copy(jds, s.jds)
	s.mu.Unlock()

	built := make([]entity.Candidate, 0, len(parsed))
	for _, r := range parsed {
		built = append(built, match.BuildCandidate(r, jds))
	}

	s.mu.Lock()
	if len(s.candidates)+len(built) > s.cfg.MaxResumes {
		current := len(s.candidates)
		s.mu.Unlock()
		return UploadSummary{}, common.CapExceededError("resumes", s.cfg.MaxResumes, current, len(built))
	}
	s.candidates = append(s.candidates, built...)
	total := len(s.candidates)
	s.mu.Unlock()

	s.logger.Info("session.resume.added", "accepted", len(built), "failed", stats.Failed, "session_total", total)
	return UploadSummary{Accepted: len(built), Failed: stats.Failed, Total: stats.Total}, nil
}

// JobDescriptions returns a copy of the session's parsed JDs.
func (s *Session) JobDescriptions() []entity.ParsedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.ParsedDocument, len(s.jds))
	copy(out, s.jds)
	return out
}

// Candidates returns a copy of the session's scored candidates.
func (s *Session) Candidates() []entity.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Snapshot captures the session state for persistence.
func (s *Session) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		JobDescriptions: s.JobDescriptions(),
		Candidates:      s.Candidates(),
	}
}

// Clear drops all JDs and candidates, returning the session to empty.
func (s *Session) Clear() {
	s.mu.Lock()
	s.jds = nil
	s.candidates = nil
	s.mu.Unlock()
	s.logger.Info("session.cleared")
}
