package domain

import (
	"encoding/json"
	"strings"
)

// SubjectMatchType selects how ExtractionRule.SubjectMatch is compared to an email subject.
type SubjectMatchType string

const (
	SubjectMatchContains SubjectMatchType = "contains"
	SubjectMatchEquals   SubjectMatchType = "equals"
	SubjectMatchRegex    SubjectMatchType = "regex"
)

func (t SubjectMatchType) String() string { return string(t) }

func (t SubjectMatchType) IsValid() bool {
	switch t {
	case SubjectMatchContains, SubjectMatchEquals, SubjectMatchRegex:
		return true
	}
	return false
}

// UnmarshalJSON decodes unknown or empty values as SubjectMatchContains.
func (t *SubjectMatchType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := SubjectMatchType(strings.ToLower(strings.TrimSpace(raw)))
	if !v.IsValid() {
		v = SubjectMatchContains
	}
	*t = v
	return nil
}

// ExtractionType selects how a VariableMapping pulls a value out of an email body.
type ExtractionType string

const (
	// ExtractionLabel matches "<pattern>: value" lines.
	ExtractionLabel ExtractionType = "label"
	// ExtractionRegex applies the pattern and takes the first capture group.
	ExtractionRegex ExtractionType = "regex"
)

func (t ExtractionType) String() string { return string(t) }

func (t ExtractionType) IsValid() bool {
	return t == ExtractionLabel || t == ExtractionRegex
}

// TargetField is the client attribute a VariableMapping populates.
type TargetField string

const (
	TargetUnknown      TargetField = ""
	TargetEmail        TargetField = "email"
	TargetName         TargetField = "name"
	TargetPhone        TargetField = "phone"
	TargetMessage      TargetField = "message"
	TargetCompany      TargetField = "company"
	TargetNotesSummary TargetField = "notes_summary"
)

// AllTargetFields lists the closed set of assignable targets.
var AllTargetFields = []TargetField{
	TargetEmail, TargetName, TargetPhone, TargetMessage, TargetCompany, TargetNotesSummary,
}

func (f TargetField) String() string { return string(f) }

func (f TargetField) IsValid() bool {
	switch f {
	case TargetEmail, TargetName, TargetPhone, TargetMessage, TargetCompany, TargetNotesSummary:
		return true
	}
	return false
}

// targetAliases maps legacy spellings onto canonical targets.
var targetAliases = map[string]TargetField{
	"body":      TargetMessage,
	"firstname": TargetName,
}

// ParseTargetField normalizes a raw target name. "clients.email", "Email" and
// "email" all resolve to TargetEmail. Unknown names return TargetUnknown.
func ParseTargetField(raw string) TargetField {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "clients.")
	if alias, ok := targetAliases[s]; ok {
		return alias
	}
	f := TargetField(s)
	if !f.IsValid() {
		return TargetUnknown
	}
	return f
}

// UnmarshalJSON normalizes aliases at the decoding boundary.
func (f *TargetField) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = ParseTargetField(raw)
	return nil
}

// VariableMapping extracts one value from an email body into a TargetField.
type VariableMapping struct {
	Key            string         `json:"key"`
	ExtractionType ExtractionType `json:"extraction_type" validate:"required,oneof=label regex"`
	Pattern        string         `json:"pattern"         validate:"required"`
	TargetField    TargetField    `json:"target_field"    validate:"required"`
}

// ExtractionRule is one Magic Extract rule. Rules are stored per organization
// as a single JSON document and replaced wholesale on save.
type ExtractionRule struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"               validate:"required,max=200"`
	SubjectMatch       string            `json:"subject_match"      validate:"required"`
	SubjectMatchType   SubjectMatchType  `json:"subject_match_type"`
	VariableMapping    []VariableMapping `json:"variable_mapping"   validate:"dive"`
	CreateInteraction  bool              `json:"create_interaction"`
	CreateNotification bool              `json:"create_notification"`
	IsActive           bool              `json:"is_active"`
	SortOrder          int               `json:"sort_order"`
}

// TargetsEmail reports whether at least one mapping fills the email field
// with a non-empty pattern.
func (r ExtractionRule) TargetsEmail() bool {
	for _, m := range r.VariableMapping {
		if m.TargetField == TargetEmail && strings.TrimSpace(m.Pattern) != "" {
			return true
		}
	}
	return false
}

// DeliveryState is what the dedup store knows about an inbound Message-ID.
type DeliveryState int

const (
	// DeliveryNew means this call claimed the message and must process it.
	DeliveryNew DeliveryState = iota
	// DeliveryInFlight means another delivery is still processing it.
	DeliveryInFlight
	// DeliveryDone means the message was already processed.
	DeliveryDone
)

// InboundEmail is the part of a received message the extraction engine reads.
type InboundEmail struct {
	MessageID string
	From      string
	Subject   string
	Body      string
}
