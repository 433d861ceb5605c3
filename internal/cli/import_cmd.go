package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/theatre-data-processor/internal/processor"
	"github.com/iliyamo/theatre-data-processor/internal/repository"
	"github.com/iliyamo/theatre-data-processor/internal/service"
)

// ImportCmd returns the import command.
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <plays|casts|theatres> <file>",
		Short: "Import a plays, casts or theatres document",
		Long: `Validate every record of a document, commit the accepted ones in one batch
and print one line per record.

Plays and casts are XML documents; theatres are a JSON array. Use "-" as the
file to read from stdin.

Examples:
  theatre import plays plays.xml
  theatre import casts casts.xml
  cat theatres.json | theatre import theatres -`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(processor.KindPlays), string(processor.KindCasts), string(processor.KindTheatres)},
		RunE:      runImport,
	}
	cmd.Flags().Bool("summary", false, "Print accepted and rejected counts after the report")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	kind, err := processor.ParseKind(args[0])
	if err != nil {
		return err
	}
	text, err := readInput(cmd.InOrStdin(), args[1])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	cfg, db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := processor.Import(ctx, repository.NewTheatreContext(db), kind, text)
	if err != nil {
		return fmt.Errorf("import %s: %w", kind, err)
	}
	out := cmd.OutOrStdout()
	printReport(out, report)

	sum := processor.Summarize(kind, report)
	if showSummary, _ := cmd.Flags().GetBool("summary"); showSummary {
		fmt.Fprintf(out, "\n%s accepted, %s rejected\n",
			okColor.Sprint(sum.Accepted), badColor.Sprint(sum.Rejected))
	}

	if publish := service.NewPublisher(cfg.EventsEnabled, cfg.AMQPURL); publish != nil {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		ev := service.NewImportEvent(string(kind), sum.Accepted, sum.Rejected, "cli")
		if err := publish(pctx, ev); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: import event not published: %v\n", err)
		}
	}
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
