package magicextract

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	defaultRuleIDPrefix = "initial-inquiry-contact-form"

	// DefaultInquirySubject is the subject sent by the website contact form.
	DefaultInquirySubject = "Ново запитване от контактната форма"

	// defaultInquiryMarker identifies an existing contact-form rule.
	defaultInquiryMarker = "Ново запитване"
)

// DefaultInquiryRule returns the built-in contact-form rule for an organization.
func DefaultInquiryRule(orgID uuid.UUID) domain.ExtractionRule {
	return domain.ExtractionRule{
		ID:               defaultRuleIDPrefix + "-" + orgID.String()[:8],
		Name:             "Initial inquiry (contact form)",
		SubjectMatch:     DefaultInquirySubject,
		SubjectMatchType: domain.SubjectMatchContains,
		VariableMapping: []domain.VariableMapping{
			{Key: "name", ExtractionType: domain.ExtractionLabel, Pattern: "Вашето име", TargetField: domain.TargetName},
			{Key: "email", ExtractionType: domain.ExtractionLabel, Pattern: "Email", TargetField: domain.TargetEmail},
			{Key: "phone", ExtractionType: domain.ExtractionLabel, Pattern: "Телефон", TargetField: domain.TargetPhone},
			{Key: "message", ExtractionType: domain.ExtractionRegex, Pattern: `::\s*([\s\S]+)`, TargetField: domain.TargetMessage},
		},
		CreateInteraction:  true,
		CreateNotification: true,
		IsActive:           true,
		SortOrder:          0,
	}
}

func hasDefaultInquiryRule(rules []domain.ExtractionRule) bool {
	for _, r := range rules {
		if strings.Contains(r.SubjectMatch, defaultInquiryMarker) {
			return true
		}
	}
	return false
}
