// Package export renders session snapshots as XLSX matching reports.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mazohq/beam-parser/constants"
	"github.com/mazohq/beam-parser/internal/entity"
	"github.com/mazohq/beam-parser/internal/match"
)

const sheetName = "Matching Report"

var headers = []string{
	"Sl No",
	"JD Name",
	"Resume Name",
	"Candidate Name",
	"Email",
	"Phone Number",
	"Candidate Experience",
	"JD Experience",
	"Candidate Skills",
	"JD Skills",
	"Skills Match %",
	"Result Based on Skill",
	"Result Based on Experience",
}

var columnWidths = []float64{5, 30, 30, 30, 35, 15, 20, 15, 50, 50, 15, 20, 25}

// Service renders XLSX report bytes from snapshots.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Filename returns the report file name for a generation time,
// e.g. parsed_report_2025-03-14_09-30.xlsx.
func Filename(t time.Time) string {
	return "parsed_report_" + t.Format("2006-01-02_15-04") + ".xlsx"
}

// BuildReport renders the JD x candidate cross product as a workbook: one row
// per pairing, grouped by JD in encounter order. The skill verdict cell is
// filled with the palette color for its verdict. A candidate with no recorded
// match for a JD scores 0 percent.
func (s *Service) BuildReport(snap entity.Snapshot, palette constants.Palette) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(index)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	verdictStyles := make(map[constants.Verdict]int)
	for _, v := range []constants.Verdict{constants.VerdictSelect, constants.VerdictHold, constants.VerdictReject} {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{constants.VerdictColor(v, palette)}},
		})
		if err != nil {
			return nil, fmt.Errorf("verdict style: %w", err)
		}
		verdictStyles[v] = styleID
	}

	row := 2
	slNo := 1
	for _, jd := range snap.JobDescriptions {
		jdExperience := jd.Experience
		if jdExperience == "" {
			jdExperience = "Not specified"
		}
		for _, cand := range snap.Candidates {
			pct := matchPercentageFor(cand, jd.Title)
			verdict := constants.VerdictFor(pct)

			expResult := "Not Qualified"
			if match.ExperienceQualified(cand.Experience, jd.Experience) {
				expResult = "Qualified"
			}

			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheetName, cell, v)
			}

			write(1, slNo)
			write(2, jd.Title)
			write(3, cand.FileName)
			write(4, cand.Name)
			write(5, cand.Email)
			write(6, cand.Phone)
			write(7, cand.Experience)
			write(8, jdExperience)
			write(9, strings.Join(cand.Skills, ", "))
			write(10, strings.Join(jd.Skills, ", "))
			write(11, fmt.Sprintf("%d%%", pct))
			write(12, string(verdict))
			write(13, expResult)

			verdictCell, _ := excelize.CoordinatesToCellName(12, row)
			_ = f.SetCellStyle(sheetName, verdictCell, verdictCell, verdictStyles[verdict])

			row++
			slNo++
		}
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"jds", len(snap.JobDescriptions),
		"candidates", len(snap.Candidates),
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// matchPercentageFor looks up the candidate's recorded match for a JD title.
func matchPercentageFor(cand entity.Candidate, title string) int {
	for _, m := range cand.PositionMatches {
		if m.Title == title {
			return m.MatchPercentage
		}
	}
	return 0
}
