// Package fields recovers contact fields and names from unstructured resume
// text. Every extractor is a pure function over text, built as an ordered
// cascade of regex heuristics where the first surviving match wins.
package fields

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

var anyWhitespace = regexp.MustCompile(`\s`)

// Email returns the first plausible email address found in the text, lowercased,
// or "" when none survives validation.
func Email(text string) string {
	seen := make(map[string]struct{})
	for _, match := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(strings.TrimSpace(match))
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		if validEmail(email) {
			return email
		}
	}
	return ""
}

func validEmail(email string) bool {
	if len(email) < 5 {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	domain := email[strings.Index(email, "@")+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	if strings.HasPrefix(email, ".") || strings.HasSuffix(email, ".") {
		return false
	}
	if strings.Contains(email, "@.") || strings.Contains(email, ".@") {
		return false
	}
	if anyWhitespace.MatchString(email) {
		return false
	}
	return true
}
