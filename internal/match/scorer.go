// Package match scores candidates against job descriptions by skill overlap.
package match

import (
	"math"
	"strconv"
	"strings"
)

// Percentage computes the skill-overlap score. A candidate skill matches a
// required skill when either string case-insensitively contains the other.
// The result is round(matching/required*100) clamped into [0,100]; an empty
// required list scores 0.
func Percentage(candidateSkills, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 0
	}

	matching := 0
	for _, skill := range candidateSkills {
		if matchesAny(skill, requiredSkills) {
			matching++
		}
	}

	pct := int(math.Round(float64(matching) / float64(len(requiredSkills)) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func matchesAny(skill string, required []string) bool {
	s := strings.ToLower(skill)
	for _, req := range required {
		r := strings.ToLower(req)
		if strings.Contains(r, s) || strings.Contains(s, r) {
			return true
		}
	}
	return false
}

// ExperienceYears parses the leading integer of a free-text experience string.
// Non-numeric input counts as 0 years.
func ExperienceYears(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	years, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return years
}

// ExperienceQualified reports whether the candidate's years are within one
// year of the job's requirement. Symmetric in its arguments.
func ExperienceQualified(candidateExperience, jobExperience string) bool {
	diff := ExperienceYears(candidateExperience) - ExperienceYears(jobExperience)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}
