package fields

import (
	"regexp"
	"strings"

	"github.com/mazohq/beam-parser/constants"
)

// Ordered phone heuristics: labeled prefix capture, +country-code with 10
// digits, plain separated groups, +country-code with grouped separators, and
// finally bare 10 digits. Evaluated first-match-wins in heuristic-then-scan
// order.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:(?:Phone|Mobile|Cell|Tel|Contact|Ph)(?:\s*[:.-])?\s*)?(\+?\d[\d\s-]{8,})`),
	regexp.MustCompile(`(\+\d{1,3}[-\s]?\d{10})`),
	regexp.MustCompile(`(\d{3}[-\s]?\d{3}[-\s]?\d{4})`),
	regexp.MustCompile(`(\+\d{1,3}[-\s]?\d{3}[-\s]?\d{3}[-\s]?\d{4})`),
	regexp.MustCompile(`(\d{10})`),
}

var (
	nonPhoneChars  = regexp.MustCompile(`[^\d+]`)
	nonDigits      = regexp.MustCompile(`\D`)
	plusCountry    = regexp.MustCompile(`^\+\d{1,3}`)
	phoneLabelWord = []string{"mobile", "phone", "cell", "tel"}
)

// Phone returns the first phone number that survives cleaning and validation,
// normalized to a +country-code form, or "" when none does.
func Phone(text string) string {
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if cleaned := CleanPhone(strings.TrimSpace(match[1])); cleaned != "" {
				return cleaned
			}
		}
	}
	return ""
}

// CleanPhone validates and normalizes one captured phone candidate.
// Rules: drop leaked label text, keep only digits and '+', 10-15 digits,
// at most one '+', a '+' must be followed by a 1-3 digit country code, and
// all-identical digit runs are rejected. Bare 10-digit numbers get the
// default country code; longer ones get '+' prefixed if missing.
func CleanPhone(phone string) string {
	lower := strings.ToLower(phone)
	for _, label := range phoneLabelWord {
		if strings.Contains(lower, label) {
			return ""
		}
	}

	cleaned := nonPhoneChars.ReplaceAllString(phone, "")
	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}

	digits := nonDigits.ReplaceAllString(cleaned, "")
	if len(digits) < 10 || len(digits) > 15 {
		return ""
	}
	if strings.Count(cleaned, "+") > 1 {
		return ""
	}
	if strings.HasPrefix(cleaned, "+") && !plusCountry.MatchString(cleaned) {
		return ""
	}
	if allSameDigit(digits) {
		return ""
	}

	if len(digits) == 10 {
		return constants.DefaultCountryCode + digits
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	return "+" + digits
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}
