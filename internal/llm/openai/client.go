package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mazohq/beam-parser/internal/llm"
)

// maxDocumentChars bounds how much document text goes into one prompt.
const maxDocumentChars = 12000

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
func (c *Client) ExtractFields(ctx context.Context, req llm.ParseRequest) (llm.DocumentFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"document_type", string(req.DocumentType),
		"text_len", len(req.DocumentText),
	)

	schema := llm.BuildDocumentSchema(req.DocumentType)
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req.DocumentType)},
			{"role": "user", "content": buildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices", "req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds())
		return llm.DocumentFields{}, raw, fmt.Errorf("no choices in openai response")
	}

	content := llm.StripFences(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	cleaned, dropped, err := llm.NormalizeAndSanitizeJSON(rawContent, req.DocumentType, c.log)
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentFields{}, rawContent, fmt.Errorf("sanitize response: %w", err)
	}
	if len(dropped) > 0 {
		c.log.Warn("llm.extract.sanitize_applied", "req_id", rid, "dropped", dropped)
	}
	rawContent = cleaned

	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.DocumentFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentFields{}, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"title", out.Title,
		"skills", len(out.Skills),
		"experience", out.Experience,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func buildSystemPrompt(kind llm.DocumentKind) string {
	parts := []string{
		"You are a recruitment document parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Skills must be short technology or competency labels, one per array entry.",
		"Experience must be the number of years as a string (e.g. \"5\"); leave it empty when not stated.",
		"Never output null. If a field is not present, omit it.",
	}
	if kind == llm.KindResume {
		parts = append(parts,
			"The document is a candidate resume: extract the professional title, skills, total years of experience, name, email, phone and highest education.")
	} else {
		parts = append(parts,
			"The document is a job description: extract the position title, required skills, required years of experience and the listed responsibilities.")
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req llm.ParseRequest) string {
	var b strings.Builder
	b.WriteString("Document type: ")
	b.WriteString(string(req.DocumentType))
	b.WriteString("\n\nDocument text:\n")
	if len(req.DocumentText) > maxDocumentChars {
		b.WriteString(req.DocumentText[:maxDocumentChars])
	} else {
		b.WriteString(req.DocumentText)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
