// Package rulefile reads Magic Extract rule sets and sample emails from YAML
// files so rules can be checked offline. JSON documents are valid YAML and
// load the same way.
package rulefile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

type mappingDoc struct {
	Key            string `yaml:"key"`
	ExtractionType string `yaml:"extraction_type"`
	Pattern        string `yaml:"pattern"`
	TargetField    string `yaml:"target_field"`
}

type ruleDoc struct {
	ID                 string       `yaml:"id"`
	Name               string       `yaml:"name"`
	SubjectMatch       string       `yaml:"subject_match"`
	SubjectMatchType   string       `yaml:"subject_match_type"`
	VariableMapping    []mappingDoc `yaml:"variable_mapping"`
	CreateInteraction  *bool        `yaml:"create_interaction"`
	CreateNotification *bool        `yaml:"create_notification"`
	IsActive           *bool        `yaml:"is_active"`
	SortOrder          int          `yaml:"sort_order"`
}

type rulesDoc struct {
	Rules []ruleDoc `yaml:"rules"`
}

// EmailDoc is a sample inbound email.
type EmailDoc struct {
	MessageID string `yaml:"message_id"`
	From      string `yaml:"from"`
	Subject   string `yaml:"subject"`
	Body      string `yaml:"body"`
}

// ParseRules decodes a document of the form {rules: [...]}. Unknown subject
// match types fall back to contains and target aliases are normalized, the
// same way the HTTP API decodes them. Omitted booleans default to true.
func ParseRules(data []byte) ([]domain.ExtractionRule, error) {
	var doc rulesDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	rules := make([]domain.ExtractionRule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		rule := domain.ExtractionRule{
			ID:                 r.ID,
			Name:               r.Name,
			SubjectMatch:       r.SubjectMatch,
			SubjectMatchType:   parseMatchType(r.SubjectMatchType),
			VariableMapping:    make([]domain.VariableMapping, 0, len(r.VariableMapping)),
			CreateInteraction:  orTrue(r.CreateInteraction),
			CreateNotification: orTrue(r.CreateNotification),
			IsActive:           orTrue(r.IsActive),
			SortOrder:          r.SortOrder,
		}
		for _, m := range r.VariableMapping {
			rule.VariableMapping = append(rule.VariableMapping, domain.VariableMapping{
				Key:            m.Key,
				ExtractionType: domain.ExtractionType(strings.ToLower(strings.TrimSpace(m.ExtractionType))),
				Pattern:        m.Pattern,
				TargetField:    domain.ParseTargetField(m.TargetField),
			})
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadRules reads and parses a rules file.
func LoadRules(path string) ([]domain.ExtractionRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	return ParseRules(data)
}

// LoadEmail reads a sample email file.
func LoadEmail(path string) (domain.InboundEmail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.InboundEmail{}, fmt.Errorf("read email %s: %w", path, err)
	}
	var doc EmailDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.InboundEmail{}, fmt.Errorf("decode email: %w", err)
	}
	return domain.InboundEmail{
		MessageID: doc.MessageID,
		From:      doc.From,
		Subject:   doc.Subject,
		Body:      doc.Body,
	}, nil
}

// MarshalRules encodes rules back into the file format.
func MarshalRules(rules []domain.ExtractionRule) ([]byte, error) {
	doc := rulesDoc{Rules: make([]ruleDoc, 0, len(rules))}
	for _, r := range rules {
		rd := ruleDoc{
			ID:                 r.ID,
			Name:               r.Name,
			SubjectMatch:       r.SubjectMatch,
			SubjectMatchType:   r.SubjectMatchType.String(),
			CreateInteraction:  &r.CreateInteraction,
			CreateNotification: &r.CreateNotification,
			IsActive:           &r.IsActive,
			SortOrder:          r.SortOrder,
		}
		for _, m := range r.VariableMapping {
			rd.VariableMapping = append(rd.VariableMapping, mappingDoc{
				Key:            m.Key,
				ExtractionType: m.ExtractionType.String(),
				Pattern:        m.Pattern,
				TargetField:    string(m.TargetField),
			})
		}
		doc.Rules = append(doc.Rules, rd)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}
	return buf.Bytes(), nil
}

func parseMatchType(raw string) domain.SubjectMatchType {
	t := domain.SubjectMatchType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return domain.SubjectMatchContains
	}
	return t
}

func orTrue(b *bool) bool {
	return b == nil || *b
}
