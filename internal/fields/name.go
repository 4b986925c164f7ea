package fields

import (
	"regexp"
	"strings"
	"unicode"
)

// nameHeaderLines bounds how far into the document a name is searched for.
const nameHeaderLines = 20

// Lines carrying generic header words never contain the candidate name.
var headerWords = regexp.MustCompile(`(?i)(?:resume|cv|profile|contact|address|phone|email|summary|objective)`)

// Ordered name patterns, most reliable first: labeled field, initials-prefixed,
// dotted initial, leading initial, trailing initial, all-caps, title case, and
// a name sitting right before a contact-info label.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Name|Full Name|Candidate Name|Applicant)\s*[:|]\s*([A-Z][A-Za-z.\s]{2,40})`),
	regexp.MustCompile(`^(?:[A-Z]\.)+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
	regexp.MustCompile(`^([A-Z]\.?[A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*(?:\.[A-Z])?)`),
	regexp.MustCompile(`^([A-Z]\s+[A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*)`),
	regexp.MustCompile(`^([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*\s+[A-Z]\.?)`),
	regexp.MustCompile(`^([A-Z][A-Z]+(?:\s+[A-Z]\.?)?(?:\s+[A-Z][A-Z]+)*)`),
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*(?:\s+[A-Z]\.?)?)`),
	regexp.MustCompile(`(?i)([A-Z][A-Za-z.\s]{2,40}?)\s+(?:Mobile|Phone|Email|Contact|Tel):`),
}

var (
	boilerplateWords = regexp.MustCompile(`(?i)resume|cv|curriculum\s+vitae|profile|updated|latest`)
	leadingSep       = regexp.MustCompile(`^\s*[-–—•|]\s*`)
	trailingSep      = regexp.MustCompile(`\s*[-–—•|]\s*$`)
	nonNameChars     = regexp.MustCompile(`[^\w\s.']`)
	multiSpace       = regexp.MustCompile(`\s+`)
	commaClause      = regexp.MustCompile(`\s*,.*$`)
	honorific        = regexp.MustCompile(`(?i)^(?:Mr|Mrs|Ms|Miss|Dr|Er|Sr|Prof|Eng)\.?$`)
	fillerToken      = regexp.MustCompile(`(?i)^(?:resume|cv|profile)$`)
	multiDot         = regexp.MustCompile(`\.+`)
)

// Name returns the best-guess full name found in the first lines of the text,
// or "" when no line yields an acceptable name.
func Name(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	lines := strings.Split(text, "\n")
	if len(lines) > nameHeaderLines {
		lines = lines[:nameHeaderLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || headerWords.MatchString(line) {
			continue
		}
		for _, pattern := range namePatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			if name := cleanName(match[1]); acceptableName(name) {
				return formatName(name)
			}
		}
	}
	return ""
}

func cleanName(name string) string {
	name = boilerplateWords.ReplaceAllString(name, "")
	name = leadingSep.ReplaceAllString(name, "")
	name = trailingSep.ReplaceAllString(name, "")
	name = nonNameChars.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	name = commaClause.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	parts := make([]string, 0, 4)
	for _, part := range strings.Split(name, " ") {
		if len(part) <= 1 {
			continue
		}
		if honorific.MatchString(part) || fillerToken.MatchString(part) {
			continue
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

func acceptableName(name string) bool {
	if len(name) < 3 {
		return false
	}
	first := rune(name[0])
	if !unicode.IsUpper(first) || unicode.IsDigit(first) {
		return false
	}
	return len(strings.Fields(name)) >= 1
}

func formatName(name string) string {
	if name == strings.ToUpper(name) {
		words := strings.Split(name, " ")
		for i, w := range words {
			if w == "" {
				continue
			}
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
		name = strings.Join(words, " ")
	}
	name = multiSpace.ReplaceAllString(name, " ")
	name = multiDot.ReplaceAllString(name, ".")
	return strings.TrimSpace(name)
}
