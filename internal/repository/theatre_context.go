package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/theatre-data-processor/internal/model"
)

// bulkChunk caps the rows per multi-row INSERT so the placeholder count
// stays below every supported driver's limit.
const bulkChunk = 500

// TheatreContext stages new entities in memory and writes them all in
// one transaction on SaveChanges.  Reads go straight to the database.
// A TheatreContext is not safe for concurrent use.
type TheatreContext struct {
	db       *sql.DB
	plays    *PlayRepo
	theatres *TheatreRepo

	stagedPlays    []*model.Play
	stagedCasts    []*model.Cast
	stagedTheatres []*model.Theatre
}

// NewTheatreContext constructs a TheatreContext over db.
func NewTheatreContext(db *sql.DB) *TheatreContext {
	return &TheatreContext{
		db:       db,
		plays:    NewPlayRepo(db),
		theatres: NewTheatreRepo(db),
	}
}

// AddPlays stages plays for the next SaveChanges.
func (c *TheatreContext) AddPlays(plays ...*model.Play) {
	c.stagedPlays = append(c.stagedPlays, plays...)
}

// AddCasts stages casts for the next SaveChanges.
func (c *TheatreContext) AddCasts(casts ...*model.Cast) {
	c.stagedCasts = append(c.stagedCasts, casts...)
}

// AddTheatres stages theatres, with their tickets, for the next SaveChanges.
func (c *TheatreContext) AddTheatres(theatres ...*model.Theatre) {
	c.stagedTheatres = append(c.stagedTheatres, theatres...)
}

// Pending returns how many top-level entities are staged.
func (c *TheatreContext) Pending() int {
	return len(c.stagedPlays) + len(c.stagedCasts) + len(c.stagedTheatres)
}

// SaveChanges writes every staged entity inside a single transaction and
// commits once.  Plays and theatres receive their generated IDs.  On
// failure the transaction is rolled back, the error wraps ErrCommit and
// the entities stay staged.  With nothing staged it does nothing.
func (c *TheatreContext) SaveChanges(ctx context.Context) (err error) {
	if c.Pending() == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrCommit, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, p := range c.stagedPlays {
		if err = c.plays.CreateTx(ctx, tx, p); err != nil {
			return fmt.Errorf("%w: insert play %q: %w", ErrCommit, p.Title, err)
		}
	}
	if err = c.plays.CreateCastsBulkTx(ctx, tx, c.stagedCasts); err != nil {
		return fmt.Errorf("%w: insert casts: %w", ErrCommit, err)
	}
	var tickets []*model.Ticket
	for _, t := range c.stagedTheatres {
		if err = c.theatres.CreateTx(ctx, tx, t); err != nil {
			return fmt.Errorf("%w: insert theatre %q: %w", ErrCommit, t.Name, err)
		}
		tickets = append(tickets, t.Tickets...)
	}
	if err = c.theatres.CreateTicketsBulkTx(ctx, tx, tickets); err != nil {
		return fmt.Errorf("%w: insert tickets: %w", ErrCommit, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}

	c.stagedPlays, c.stagedCasts, c.stagedTheatres = nil, nil, nil
	return nil
}

// Theatres returns the persisted theatres with at least minHalls halls
// together with all of their tickets.
func (c *TheatreContext) Theatres(ctx context.Context, minHalls int) ([]*model.Theatre, error) {
	return c.theatres.ListWithTickets(ctx, minHalls)
}

// Plays returns every persisted play together with its casts.
func (c *TheatreContext) Plays(ctx context.Context) ([]*model.Play, error) {
	return c.plays.ListWithCasts(ctx)
}
