package constants

// Verdict is the three-tier screening outcome derived from a skill match percentage.
type Verdict string

const (
	VerdictSelect Verdict = "Select"
	VerdictHold   Verdict = "Hold"
	VerdictReject Verdict = "Reject"
)

// VerdictFor maps a match percentage to a verdict: 0-40 Reject, 41-60 Hold, 61+ Select.
func VerdictFor(percentage int) Verdict {
	if percentage <= 40 {
		return VerdictReject
	}
	if percentage <= 60 {
		return VerdictHold
	}
	return VerdictSelect
}

// Palette selects the cell background colors used for verdict cells in XLSX reports.
type Palette int

const (
	// PaletteStandard is used for freshly generated reports.
	PaletteStandard Palette = iota
	// PaletteBright is used when re-rendering a report from a history record.
	PaletteBright
)

// VerdictColor returns the RGB hex (no leading '#') for a verdict cell background.
// Unknown verdicts render black.
func VerdictColor(v Verdict, p Palette) string {
	if p == PaletteBright {
		switch v {
		case VerdictSelect:
			return "00FF00"
		case VerdictHold:
			return "FFFF00"
		case VerdictReject:
			return "FF0000"
		default:
			return "000000"
		}
	}
	switch v {
	case VerdictSelect:
		return "008000"
	case VerdictHold:
		return "FFA500"
	case VerdictReject:
		return "FF0000"
	default:
		return "000000"
	}
}
