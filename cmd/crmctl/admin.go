package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/adminconfig"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/crm-backend/internal/app"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/admin"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the Admin Center",
	}
	code := &cobra.Command{
		Use:   "code",
		Short: "Show or rotate the Admin Center access code",
	}
	code.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current access code, creating one if none exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCodeService(cmd, (*admin.Service).GetOrCreateCode)
			},
		},
		&cobra.Command{
			Use:   "regenerate",
			Short: "Replace the access code. Existing sessions stay valid until they expire",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCodeService(cmd, (*admin.Service).RegenerateCode)
			},
		},
	)
	cmd.AddCommand(code)
	return cmd
}

// withCodeService runs op as the configured admin against the database.
func withCodeService(cmd *cobra.Command, op func(*admin.Service, context.Context) (domain.AccessCode, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Admin.Email == "" {
		return errors.New("ADMIN_EMAIL is not set")
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := admin.NewService(logger, admin.Config{AdminEmail: cfg.Admin.Email}, adminconfig.New(pool), nil, nil, nil, nil, nil, audit.New(pool))

	code, err := op(svc, ctxutil.WithUserEmail(ctx, cfg.Admin.Email))
	if err != nil {
		return err
	}

	logger.Info("admin access code ready", slog.Time("updated_at", code.UpdatedAt))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t(updated %s)\n", code.Code, code.UpdatedAt.Format(time.RFC3339))
	return nil
}
