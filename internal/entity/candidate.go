package entity

// PositionMatch is the computed relationship between one candidate and one
// job description. Derived; recomputed when a resume is parsed against the
// job descriptions known at that moment.
type PositionMatch struct {
	Title           string   `json:"title"`
	MatchPercentage int      `json:"matchPercentage"`
	Experience      string   `json:"experience"`
	Skills          []string `json:"skills"`
}

// Candidate is a parsed resume enriched with match data against all known
// job descriptions. Owned by the session; destroyed on report generation.
type Candidate struct {
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	Skills               []string        `json:"skills"`
	Experience           string          `json:"experience"`
	Education            string          `json:"education"`
	MatchPercentage      int             `json:"matchPercentage"`
	FileName             string          `json:"fileName"`
	PositionMatches      []PositionMatch `json:"positionMatches"`
	BestMatchingPosition string          `json:"bestMatchingPosition"`
}
