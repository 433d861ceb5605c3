package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iliyamo/theatre-data-processor/internal/processor"
	"github.com/iliyamo/theatre-data-processor/internal/repository"
)

// ExportCmd returns the export command with its theatres and plays
// subcommands.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export theatres as JSON or plays as XML",
	}
	cmd.PersistentFlags().StringP("output", "o", "", "Write the document to a file instead of stdout")

	theatres := &cobra.Command{
		Use:   "theatres",
		Short: "Export theatres with at least --min-halls halls and 20 tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			minHalls, _ := cmd.Flags().GetInt("min-halls")
			return runExport(cmd, func(ctx context.Context, src processor.Source) (string, error) {
				return processor.ExportTheatres(ctx, src, minHalls)
			})
		},
	}
	theatres.Flags().Int("min-halls", 0, "Minimum number of halls")
	_ = theatres.MarkFlagRequired("min-halls")

	plays := &cobra.Command{
		Use:   "plays",
		Short: "Export plays rated at most --max-rating with their main actors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maxRating, _ := cmd.Flags().GetFloat64("max-rating")
			return runExport(cmd, func(ctx context.Context, src processor.Source) (string, error) {
				return processor.ExportPlays(ctx, src, maxRating)
			})
		},
	}
	plays.Flags().Float64("max-rating", 0, "Maximum rating")
	_ = plays.MarkFlagRequired("max-rating")

	cmd.AddCommand(theatres, plays)
	return cmd
}

func runExport(cmd *cobra.Command, export func(context.Context, processor.Source) (string, error)) error {
	ctx := cmd.Context()
	_, db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	doc, err := export(ctx, repository.NewTheatreContext(db))
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(doc+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
