package llm

// BuildDocumentSchema returns a JSON-Schema (draft 2020-12 subset) for the
// remote parser response, as a generic map. It is sent to the model as a
// structured-output constraint and also used locally to validate the reply.
func BuildDocumentSchema(kind DocumentKind) map[string]any {
	props := map[string]any{
		"title":      map[string]any{"type": "string"},
		"skills":     stringListProp(),
		"experience": map[string]any{"type": "string"},
	}
	required := []string{"title", "skills"}

	if kind == KindResume {
		props["name"] = map[string]any{"type": "string"}
		props["email"] = map[string]any{"type": "string"}
		props["phone"] = map[string]any{"type": "string"}
		props["education"] = map[string]any{"type": "string"}
	} else {
		props["responsibilities"] = stringListProp()
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func stringListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
