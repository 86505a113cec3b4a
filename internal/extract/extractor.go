package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Extract pulls a single value out of a normalized body. The second return
// value is false when nothing was found.
//
// Label mode scans line by line for "<label>: value" where the label equals
// the pattern case-insensitively; the value keeps its original case. Regex
// mode applies the pattern case-insensitively and returns capture group 1.
func Extract(body string, m domain.VariableMapping) (string, bool) {
	if strings.TrimSpace(m.Pattern) == "" {
		return "", false
	}
	switch m.ExtractionType {
	case domain.ExtractionLabel:
		return extractLabel(body, m.Pattern)
	default:
		v, ok, _ := extractRegex(body, m.Pattern)
		return v, ok
	}
}

func extractLabel(body, label string) (string, bool) {
	want := strings.TrimSpace(label)
	for _, line := range strings.Split(body, "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(name), want) {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		return value, true
	}
	return "", false
}

func extractRegex(body, pattern string) (string, bool, error) {
	re, err := CompileMappingPattern(pattern)
	if err != nil {
		return "", false, err
	}
	match := re.FindStringSubmatch(body)
	if len(match) < 2 {
		return "", false, nil
	}
	value := strings.TrimSpace(match[1])
	return value, value != "", nil
}

// CompileMappingPattern compiles a regex mapping pattern the way Extract
// applies it and checks that it has at least one capture group.
func CompileMappingPattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compile mapping pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("mapping pattern %q has no capture group", pattern)
	}
	return re, nil
}
