// Package cli implements the theatre command line: imports, exports,
// schema setup, token issuing and the event consumer.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/iliyamo/theatre-data-processor/internal/config"
	"github.com/iliyamo/theatre-data-processor/internal/database"
	"github.com/iliyamo/theatre-data-processor/internal/processor"
)

var (
	okColor  = color.New(color.FgGreen)
	badColor = color.New(color.FgRed)
)

// openDB loads the configuration and opens its database with the schema
// in place.
func openDB(ctx context.Context) (config.Config, *sql.DB, error) {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.EnsureSchema(ctx, db, cfg.DBDriver); err != nil {
		_ = db.Close()
		return cfg, nil, fmt.Errorf("ensure schema: %w", err)
	}
	return cfg, db, nil
}

// printReport writes report lines, green for accepted records and red
// for rejected ones.  Colour is dropped when stdout is not a terminal.
func printReport(w io.Writer, report string) {
	if report == "" {
		return
	}
	for _, line := range strings.Split(report, "\n") {
		if line == processor.ErrorMessage {
			badColor.Fprintln(w, line)
		} else {
			okColor.Fprintln(w, line)
		}
	}
}
