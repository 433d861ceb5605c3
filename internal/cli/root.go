package cli

import "github.com/spf13/cobra"

// RootCmd assembles the theatre command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "theatre",
		Short: "Import and export theatre, play and cast data",
		Long: `theatre validates plays, casts and theatres documents, stores the accepted
records and exports theatres as JSON and plays as XML.

Configuration comes from the environment or a .env file (DB_DRIVER,
SQLITE_PATH, DB_*, JWT_SECRET, EVENTS_ENABLED, RABBITMQ_URL).`,
		SilenceUsage: true,
	}
	root.AddCommand(ImportCmd())
	root.AddCommand(ExportCmd())
	root.AddCommand(MigrateCmd())
	root.AddCommand(TokenCmd())
	root.AddCommand(ConsumeCmd())
	return root
}
