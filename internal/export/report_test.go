package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mazohq/beam-parser/constants"
	"github.com/mazohq/beam-parser/internal/entity"
)

func testSnapshot() entity.Snapshot {
	return entity.Snapshot{
		JobDescriptions: []entity.ParsedDocument{
			{Title: "Backend Engineer", Skills: []string{"Go", "SQL"}, Experience: "4"},
			{Title: "Data Engineer", Skills: []string{"Python"}, Experience: ""},
		},
		Candidates: []entity.Candidate{
			{
				Name:       "Jane Doe",
				Email:      "jane@example.com",
				Phone:      "+919876543210",
				Skills:     []string{"Go", "SQL", "Docker"},
				Experience: "5",
				FileName:   "jane.pdf",
				PositionMatches: []entity.PositionMatch{
					{Title: "Backend Engineer", MatchPercentage: 100},
					{Title: "Data Engineer", MatchPercentage: 0},
				},
			},
			{
				Name:       "Raj Patel",
				Experience: "1",
				Skills:     []string{"Python"},
				FileName:   "raj.docx",
				PositionMatches: []entity.PositionMatch{
					{Title: "Backend Engineer", MatchPercentage: 50},
					{Title: "Data Engineer", MatchPercentage: 100},
				},
			},
		},
	}
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	b, err := NewService(nil).BuildReport(testSnapshot(), constants.PaletteStandard)
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetName, ref)
		if err != nil {
			t.Fatalf("read %s: %v", ref, err)
		}
		return v
	}

	for i, want := range headers {
		ref, _ := excelize.CoordinatesToCellName(i+1, 1)
		if got := cell(ref); got != want {
			t.Errorf("header %s = %q, want %q", ref, got, want)
		}
	}

	// Row 2: first JD x first candidate.
	if got := cell("A2"); got != "1" {
		t.Errorf("Sl No = %q, want 1", got)
	}
	if got := cell("B2"); got != "Backend Engineer" {
		t.Errorf("JD name = %q", got)
	}
	if got := cell("C2"); got != "jane.pdf" {
		t.Errorf("resume name = %q", got)
	}
	if got := cell("K2"); got != "100%" {
		t.Errorf("skills match = %q, want 100%%", got)
	}
	if got := cell("L2"); got != "Select" {
		t.Errorf("skill verdict = %q, want Select", got)
	}
	if got := cell("M2"); got != "Qualified" {
		t.Errorf("experience verdict = %q, want Qualified for 5 vs 4", got)
	}

	// Row 3: first JD x second candidate (50% is a Hold, 1 vs 4 years fails).
	if got := cell("A3"); got != "2" {
		t.Errorf("Sl No = %q, want 2", got)
	}
	if got := cell("L3"); got != "Hold" {
		t.Errorf("skill verdict = %q, want Hold at 50%%", got)
	}
	if got := cell("M3"); got != "Not Qualified" {
		t.Errorf("experience verdict = %q, want Not Qualified", got)
	}

	// Row 4: second JD x first candidate, JD experience blank.
	if got := cell("B4"); got != "Data Engineer" {
		t.Errorf("JD name = %q", got)
	}
	if got := cell("H4"); got != "Not specified" {
		t.Errorf("JD experience = %q, want Not specified", got)
	}
	if got := cell("K4"); got != "0%" {
		t.Errorf("skills match = %q, want 0%%", got)
	}
	if got := cell("L4"); got != "Reject" {
		t.Errorf("skill verdict = %q, want Reject at 0%%", got)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 5 {
		t.Errorf("rows = %d, want header plus 2x2 pairings", len(rows))
	}
}

// A candidate with no recorded match for a JD renders as 0%.
func TestBuildReportMissingMatch(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Candidates[0].PositionMatches = nil

	b, err := NewService(nil).BuildReport(snap, constants.PaletteBright)
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(sheetName, "K2")
	if err != nil {
		t.Fatalf("read K2: %v", err)
	}
	if got != "0%" {
		t.Errorf("skills match = %q, want 0%% without a recorded match", got)
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 30, 45, 0, time.UTC)
	if got := Filename(at); got != "parsed_report_2025-03-14_09-30.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}
