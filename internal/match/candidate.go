package match

import (
	"github.com/mazohq/beam-parser/internal/entity"
)

// BuildCandidate derives a Candidate from a parsed resume and the job
// descriptions known at this moment: one PositionMatch per JD plus the best
// match. On equal percentages the earliest-encountered JD wins. Matches are
// not recomputed when JDs are added later.
func BuildCandidate(resume entity.ParsedResume, jds []entity.ParsedDocument) entity.Candidate {
	matches := make([]entity.PositionMatch, 0, len(jds))
	for _, jd := range jds {
		matches = append(matches, entity.PositionMatch{
			Title:           jd.Title,
			MatchPercentage: Percentage(resume.Skills, jd.Skills),
			Experience:      jd.Experience,
			Skills:          jd.Skills,
		})
	}

	best := entity.PositionMatch{}
	if len(matches) > 0 {
		best = matches[0]
		for _, m := range matches[1:] {
			if m.MatchPercentage > best.MatchPercentage {
				best = m
			}
		}
	}

	return entity.Candidate{
		Name:                 resume.Name,
		Email:                resume.Email,
		Phone:                resume.Phone,
		Skills:               resume.Skills,
		Experience:           resume.Experience,
		Education:            resume.Education,
		MatchPercentage:      best.MatchPercentage,
		FileName:             resume.FileName,
		PositionMatches:      matches,
		BestMatchingPosition: best.Title,
	}
}
