package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Matches reports whether subject satisfies a rule's subject predicate.
// Both sides are trimmed. Contains and equals are case-sensitive. An empty
// pattern never matches. A malformed regex yields false and a non-nil error;
// callers treat it as a non-match.
func Matches(matchType domain.SubjectMatchType, pattern, subject string) (bool, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false, nil
	}
	subject = strings.TrimSpace(subject)

	switch matchType {
	case domain.SubjectMatchEquals:
		return subject == pattern, nil
	case domain.SubjectMatchRegex:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("compile subject pattern %q: %w", pattern, err)
		}
		return re.MatchString(subject), nil
	default:
		return strings.Contains(subject, pattern), nil
	}
}
