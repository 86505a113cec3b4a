package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/extract"
	"github.com/heartmarshall/crm-backend/internal/rulefile"
	"github.com/heartmarshall/crm-backend/internal/service/magicextract"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Work with Magic Extract rule files",
	}
	cmd.AddCommand(newRulesCheckCmd(), newRulesDryRunCmd(), newRulesDefaultCmd())
	return cmd
}

func newRulesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <rules.yaml>",
		Short: "Validate a rule file the way the API does on save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rulefile.LoadRules(args[0])
			if err != nil {
				return err
			}
			if err := magicextract.ValidateRules(rules); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rule(s)\n", len(rules))
			return nil
		},
	}
}

type dryRunReport struct {
	Matched     bool              `yaml:"matched"`
	RuleID      string            `yaml:"rule_id,omitempty"`
	RuleName    string            `yaml:"rule_name,omitempty"`
	HasEmail    bool              `yaml:"has_email"`
	Fields      map[string]string `yaml:"fields,omitempty"`
	Client      *clientPreview    `yaml:"client,omitempty"`
	Diagnostics []string          `yaml:"diagnostics,omitempty"`
}

type clientPreview struct {
	Name    string  `yaml:"name"`
	Email   string  `yaml:"email"`
	Phone   *string `yaml:"phone,omitempty"`
	Company *string `yaml:"company,omitempty"`
	Message string  `yaml:"message,omitempty"`
}

func newRulesDryRunCmd() *cobra.Command {
	var rulesPath, emailPath string

	cmd := &cobra.Command{
		Use:   "dry-run",
		Short: "Evaluate a rule file against a sample email without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := rulefile.LoadRules(rulesPath)
			if err != nil {
				return err
			}
			email, err := rulefile.LoadEmail(emailPath)
			if err != nil {
				return err
			}

			report := buildReport(extract.Evaluate(rules, email))

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule file (YAML or JSON)")
	cmd.Flags().StringVar(&emailPath, "email", "", "sample email file (YAML)")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func buildReport(out extract.Outcome) dryRunReport {
	report := dryRunReport{Matched: out.Matched(), HasEmail: out.HasEmail()}
	if out.Rule != nil {
		report.RuleID = out.Rule.ID
		report.RuleName = out.Rule.Name
	}
	if len(out.Fields) > 0 {
		report.Fields = make(map[string]string, len(out.Fields))
		for k, v := range out.Fields {
			report.Fields[k.String()] = v
		}
	}
	if report.HasEmail {
		c := out.Fields.ToContact()
		report.Client = &clientPreview{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Company: c.Company,
			Message: c.Message,
		}
	}
	for _, d := range out.Diagnostics {
		report.Diagnostics = append(report.Diagnostics, fmt.Sprintf("%s [%s]: %s", d.Kind, d.RuleID, d.Message))
	}
	return report
}

func newRulesDefaultCmd() *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "default",
		Short: "Print the built-in contact form rule for an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orgID, err := uuid.Parse(org)
			if err != nil {
				return fmt.Errorf("invalid --org: %w", err)
			}
			data, err := rulefile.MarshalRules([]domain.ExtractionRule{magicextract.DefaultInquiryRule(orgID)})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&org, "org", "", "organization id")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}
