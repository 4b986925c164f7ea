// Package extract turns PDF and DOCX document bytes into normalized plain text.
package extract

import (
	"log/slog"
	"time"

	"github.com/mazohq/beam-parser/constants"
	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
)

// Extractor converts raw documents into normalized plain text.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Text extracts and normalizes the text of a raw document. Legacy DOC and
// unknown media types fail with common.ErrUnsupportedFormat; decode failures
// fail with common.ErrExtraction. No side effects beyond reading the buffer.
func (e *Extractor) Text(doc entity.RawDocument) (string, error) {
	start := time.Now()

	var (
		text string
		err  error
	)
	switch doc.MediaType {
	case constants.MediaTypePDF:
		text, err = pdfText(doc.Content)
	case constants.MediaTypeDOCX:
		text, err = docxText(doc.Content)
	case constants.MediaTypeDOC:
		return "", common.NewAppError("UNSUPPORTED_FORMAT",
			"DOC format is not supported, please convert to DOCX or PDF", common.ErrUnsupportedFormat)
	default:
		return "", common.UnsupportedFormatError(doc.MediaType)
	}
	if err != nil {
		e.logger.Error("extract.text.failed", "file", doc.Filename, "media_type", doc.MediaType, "error", err)
		return "", common.ExtractionError(doc.Filename, err)
	}

	text = Normalize(text)
	e.logger.Info("extract.text.ok",
		"file", doc.Filename,
		"media_type", doc.MediaType,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
