package extract

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// sameLineTolerance is how close two fragments must be vertically (in layout
// units) to be treated as parts of the same line.
const sameLineTolerance = 5

// pdfText decodes a PDF page by page and reconstructs reading order from
// fragment positions: fragments are sorted by descending vertical position,
// then ascending horizontal position, and joined into space-separated lines.
func pdfText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var full strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		full.WriteString(assemblePage(page.Content().Text))
	}
	return full.String(), nil
}

func assemblePage(fragments []pdf.Text) string {
	frags := make([]pdf.Text, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f.S) != "" {
			frags = append(frags, f)
		}
	}

	sort.SliceStable(frags, func(i, j int) bool {
		if math.Abs(frags[i].Y-frags[j].Y) < sameLineTolerance {
			return frags[i].X < frags[j].X
		}
		return frags[i].Y > frags[j].Y
	})

	var (
		out   strings.Builder
		line  strings.Builder
		lastY float64
		seen  bool
	)
	flush := func() {
		if t := strings.TrimSpace(line.String()); t != "" {
			out.WriteString(t)
			out.WriteString("\n")
		}
		line.Reset()
	}
	for _, f := range frags {
		text := strings.TrimSpace(f.S)
		if seen && math.Abs(f.Y-lastY) > sameLineTolerance {
			flush()
		}
		// Single space between adjacent fragments unless one edge has one.
		if line.Len() > 0 && !strings.HasSuffix(line.String(), " ") && !strings.HasPrefix(text, " ") {
			line.WriteString(" ")
		}
		line.WriteString(text)
		lastY = f.Y
		seen = true
	}
	flush()
	return out.String()
}
