package llm

import "context"

// DocumentKind tells the remote parser which fields we expect back.
type DocumentKind string

const (
	KindResume         DocumentKind = "resume"
	KindJobDescription DocumentKind = "jd"
)

// ParseRequest is the single opaque exchange with the remote parser.
type ParseRequest struct {
	DocumentText string       `json:"documentText"`
	DocumentType DocumentKind `json:"documentType"`
}

// DocumentFields is the normalized shape we want back from the remote parser.
// Fields not relevant to the document kind are left empty.
type DocumentFields struct {
	Title            string   `json:"title"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	Name             string   `json:"name,omitempty"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Education        string   `json:"education,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// FieldExtractor is the interface the parsing pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ParseRequest) (DocumentFields, []byte /*rawJSON*/, error)
}
