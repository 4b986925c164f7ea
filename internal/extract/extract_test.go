package extract

import (
	"errors"
	"testing"

	"github.com/mazohq/beam-parser/constants"
	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
)

func TestTextRejectsLegacyDoc(t *testing.T) {
	t.Parallel()

	e := NewExtractor(nil)
	_, err := e.Text(entity.RawDocument{
		Content:   []byte("legacy"),
		MediaType: constants.MediaTypeDOC,
		Filename:  "old.doc",
	})
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTextRejectsUnknownMediaType(t *testing.T) {
	t.Parallel()

	e := NewExtractor(nil)
	_, err := e.Text(entity.RawDocument{
		Content:   []byte("plain"),
		MediaType: "text/plain",
		Filename:  "notes.txt",
	})
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTextWrapsDecodeFailure(t *testing.T) {
	t.Parallel()

	e := NewExtractor(nil)
	_, err := e.Text(entity.RawDocument{
		Content:   []byte("not a pdf"),
		MediaType: constants.MediaTypePDF,
		Filename:  "broken.pdf",
	})
	if !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}
