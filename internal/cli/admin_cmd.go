package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/theatre-data-processor/internal/config"
	"github.com/iliyamo/theatre-data-processor/internal/middleware"
	"github.com/iliyamo/theatre-data-processor/internal/queue"
	"github.com/iliyamo/theatre-data-processor/internal/utils"
)

// MigrateCmd returns the migrate command, which creates missing tables.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema ready (%s)\n", okColor.Sprint("✓"), cfg.DBDriver)
			return nil
		},
	}
}

// TokenCmd returns the token command, which signs an operator JWT.
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for the import endpoints",
		Long: `Sign an HS256 access token with JWT_SECRET.

Example:
  theatre token --subject ops-team --role OPERATOR --ttl 120`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetInt("ttl")
			if ttl <= 0 {
				ttl = cfg.AccessTTLMin
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			tok, err := utils.NewAccessToken(cfg.JWTSecret, subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok.Token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", tok.Exp.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
	cmd.Flags().String("subject", "", "Token subject (who runs the imports)")
	cmd.Flags().String("role", middleware.RoleOperator, "Role claim")
	cmd.Flags().Int("ttl", 0, "Lifetime in minutes (default ACCESS_TOKEN_TTL_MIN)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

// ConsumeCmd returns the consume command, which records import events
// in logs/import.log until killed.
func ConsumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Append import events from RabbitMQ to logs/import.log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			fmt.Fprintf(cmd.ErrOrStderr(), "consuming %s\n", queue.ImportCompletedQueue)
			return queue.StartImportConsumer(cfg.AMQPURL)
		},
	}
}
