package match

import (
	"testing"

	"github.com/mazohq/beam-parser/internal/entity"
)

func resume(skills ...string) entity.ParsedResume {
	return entity.ParsedResume{
		ParsedDocument: entity.ParsedDocument{
			Title:      "Backend Engineer",
			Skills:     skills,
			Experience: "5",
		},
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+919876543210",
		FileName: "jane.pdf",
	}
}

func jd(title string, skills ...string) entity.ParsedDocument {
	return entity.ParsedDocument{Title: title, Skills: skills, Experience: "4"}
}

func TestBuildCandidate(t *testing.T) {
	t.Parallel()

	jds := []entity.ParsedDocument{
		jd("Platform Engineer", "Go", "Kubernetes"),
		jd("Backend Engineer", "Go"),
		jd("Data Engineer", "Python", "Spark"),
	}

	cand := BuildCandidate(resume("Go", "Docker"), jds)

	if len(cand.PositionMatches) != 3 {
		t.Fatalf("expected 3 position matches, got %d", len(cand.PositionMatches))
	}
	// Encounter order preserved.
	for i, want := range []string{"Platform Engineer", "Backend Engineer", "Data Engineer"} {
		if cand.PositionMatches[i].Title != want {
			t.Errorf("match %d title = %q, want %q", i, cand.PositionMatches[i].Title, want)
		}
	}
	if got := cand.PositionMatches[0].MatchPercentage; got != 50 {
		t.Errorf("platform match = %d, want 50", got)
	}
	if got := cand.PositionMatches[1].MatchPercentage; got != 100 {
		t.Errorf("backend match = %d, want 100", got)
	}
	if cand.BestMatchingPosition != "Backend Engineer" {
		t.Errorf("best position = %q, want Backend Engineer", cand.BestMatchingPosition)
	}
	if cand.MatchPercentage != 100 {
		t.Errorf("best percentage = %d, want 100", cand.MatchPercentage)
	}
	if cand.FileName != "jane.pdf" {
		t.Errorf("file name = %q, want jane.pdf", cand.FileName)
	}
}

// Equal percentages resolve to the earliest JD.
func TestBuildCandidateTieBreak(t *testing.T) {
	t.Parallel()

	jds := []entity.ParsedDocument{
		jd("First", "Go"),
		jd("Second", "Go"),
	}
	cand := BuildCandidate(resume("Go"), jds)
	if cand.BestMatchingPosition != "First" {
		t.Errorf("best position = %q, want First", cand.BestMatchingPosition)
	}
}

func TestBuildCandidateNoJobDescriptions(t *testing.T) {
	t.Parallel()

	cand := BuildCandidate(resume("Go"), nil)
	if len(cand.PositionMatches) != 0 {
		t.Errorf("expected no position matches, got %d", len(cand.PositionMatches))
	}
	if cand.BestMatchingPosition != "" || cand.MatchPercentage != 0 {
		t.Errorf("expected zero best match, got %q %d", cand.BestMatchingPosition, cand.MatchPercentage)
	}
}
