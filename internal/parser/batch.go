package parser

import (
	"context"
	"sync"
	"time"

	"github.com/mazohq/beam-parser/internal/entity"
)

// ProgressFunc receives cumulative progress in percent after each chunk
// settles. Values are non-decreasing and finish at exactly 100.
type ProgressFunc func(percent float64)

// BatchStats summarizes one batch run for the caller's notification.
type BatchStats struct {
	Total     int
	Succeeded int
	Failed    int
}

// ParseJobDescriptions parses a batch of JD files in fixed-size chunks.
// Failures are logged and excluded from the result; order of successes
// follows input order.
func (s *Service) ParseJobDescriptions(ctx context.Context, docs []entity.RawDocument, onProgress ProgressFunc) ([]entity.ParsedDocument, BatchStats) {
	parsed, stats := runBatch(ctx, s, docs, onProgress, s.ParseJobDescription)
	return parsed, stats
}

// ParseResumes parses a batch of resume files in fixed-size chunks.
func (s *Service) ParseResumes(ctx context.Context, docs []entity.RawDocument, onProgress ProgressFunc) ([]entity.ParsedResume, BatchStats) {
	parsed, stats := runBatch(ctx, s, docs, onProgress, s.ParseResume)
	return parsed, stats
}

// runBatch is the chunked fan-out/fan-in engine. Within a chunk every parse is
// dispatched concurrently and the orchestrator waits for all of them to settle;
// a failing document never aborts its siblings or later chunks. Chunks run
// strictly one after another with a fixed pause in between (omitted after the
// last chunk) so the remote collaborator is never hit by more than one chunk's
// worth of concurrent calls.
func runBatch[T any](
	ctx context.Context,
	s *Service,
	docs []entity.RawDocument,
	onProgress ProgressFunc,
	parse func(context.Context, entity.RawDocument) (T, error),
) ([]T, BatchStats) {
	stats := BatchStats{Total: len(docs)}
	if len(docs) == 0 {
		return nil, stats
	}

	start := time.Now()
	s.logger.Info("parse.batch.start", "files", len(docs), "chunk_size", s.cfg.ChunkSize)

	results := make([]T, 0, len(docs))
	processed := 0

	for offset := 0; offset < len(docs); offset += s.cfg.ChunkSize {
		end := offset + s.cfg.ChunkSize
		if end > len(docs) {
			end = len(docs)
		}
		chunk := docs[offset:end]

		type slot struct {
			value T
			err   error
		}
		slots := make([]slot, len(chunk))

		var wg sync.WaitGroup
		for i, doc := range chunk {
			wg.Add(1)
			go func(i int, doc entity.RawDocument) {
				defer wg.Done()
				slots[i].value, slots[i].err = parse(ctx, doc)
			}(i, doc)
		}
		wg.Wait()

		for i, res := range slots {
			if res.err != nil {
				stats.Failed++
				s.logger.Error("parse.batch.file_failed", "file", chunk[i].Filename, "error", res.err)
				continue
			}
			stats.Succeeded++
			results = append(results, res.value)
		}

		processed += len(chunk)
		if onProgress != nil {
			progress := float64(processed) / float64(len(docs)) * 100
			if progress > 100 {
				progress = 100
			}
			onProgress(progress)
		}

		if end < len(docs) && s.cfg.ChunkDelay > 0 {
			select {
			case <-time.After(s.cfg.ChunkDelay):
			case <-ctx.Done():
				s.logger.Warn("parse.batch.cancelled", "processed", processed, "total", len(docs))
				return results, stats
			}
		}
	}

	s.logger.Info("parse.batch.ok",
		"files", len(docs),
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results, stats
}
