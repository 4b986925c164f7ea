package entity

// RawDocument is an uploaded file before extraction. It only lives for the
// duration of a parse.
type RawDocument struct {
	Content   []byte
	MediaType string
	Filename  string
}

// ParsedDocument is a parsed job description. Immutable after creation.
type ParsedDocument struct {
	Title            string   `json:"title"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	Responsibilities []string `json:"responsibilities"`
}

// ParsedResume extends ParsedDocument with candidate contact fields and the
// source file name, which survives into the Candidate built from it.
type ParsedResume struct {
	ParsedDocument
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Education string `json:"education"`
	FileName  string `json:"fileName"`
}
