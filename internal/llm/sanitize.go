package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// StripFences removes markdown code fences some models wrap JSON output in.
func StripFences(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// NormalizeAndSanitizeJSON
// - Coerces scalar skills/responsibilities into one-element lists
// - Coerces numeric experience into its string form
// - Drops null/empty optionals and unknown keys
// so a loosely-shaped model reply can still validate against the strict schema.
func NormalizeAndSanitizeJSON(raw []byte, kind DocumentKind, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)

	for _, k := range []string{"skills", "responsibilities"} {
		coerceStringList(m, k, &dropped)
	}
	if m["skills"] == nil {
		m["skills"] = []any{}
	}

	if v, ok := m["experience"]; ok {
		switch t := v.(type) {
		case float64:
			if t == float64(int64(t)) {
				m["experience"] = fmt.Sprintf("%d", int64(t))
			} else {
				m["experience"] = fmt.Sprintf("%v", t)
			}
		case string:
			m["experience"] = strings.TrimSpace(t)
		case nil:
			delete(m, "experience")
			dropped = append(dropped, "experience(null)")
		}
	}

	allowed := map[string]struct{}{
		"title": {}, "skills": {}, "experience": {},
	}
	if kind == KindResume {
		for _, k := range []string{"name", "email", "phone", "education"} {
			allowed[k] = struct{}{}
		}
	} else {
		allowed["responsibilities"] = struct{}{}
	}
	for k, v := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		if s, ok := v.(string); ok {
			m[k] = strings.TrimSpace(s)
		}
		if v == nil {
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		}
	}
	if _, ok := m["title"]; !ok {
		m["title"] = ""
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

func coerceStringList(m map[string]any, key string, dropped *[]string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch t := v.(type) {
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" && item != nil {
				out = append(out, s)
			}
		}
		m[key] = out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			m[key] = []any{s}
		} else {
			m[key] = []any{}
		}
		*dropped = append(*dropped, key+"(scalar)")
	case nil:
		delete(m, key)
		*dropped = append(*dropped, key+"(null)")
	default:
		m[key] = []any{strings.TrimSpace(fmt.Sprintf("%v", t))}
		*dropped = append(*dropped, key+"(scalar)")
	}
}
