package entity

// Snapshot is the payload persisted with a history record: the job
// descriptions and candidates as they stood when the report was generated.
type Snapshot struct {
	JobDescriptions []ParsedDocument `json:"jobDescriptions"`
	Candidates      []Candidate      `json:"candidates"`
}
