package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iliyamo/theatre-data-processor/internal/model"
)

// PlayRepo reads and writes plays and their casts.
type PlayRepo struct {
	db *sql.DB
}

// NewPlayRepo constructs a PlayRepo with the provided DB handle.
func NewPlayRepo(db *sql.DB) *PlayRepo {
	return &PlayRepo{db: db}
}

// CreateTx inserts a play within the caller's transaction and sets its
// generated ID.  Casts on the play are not written.
func (r *PlayRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Play) error {
	const q = `INSERT INTO plays (title, duration_seconds, rating, genre, description, screenwriter)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, p.Title, int64(p.Duration/time.Second), p.Rating, int(p.Genre), p.Description, p.Screenwriter)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// CreateCastsBulkTx inserts casts in multi-row statements.  The
// generated IDs are not read back.  An empty slice is a no-op.
func (r *PlayRepo) CreateCastsBulkTx(ctx context.Context, tx *sql.Tx, casts []*model.Cast) error {
	for start := 0; start < len(casts); start += bulkChunk {
		end := min(start+bulkChunk, len(casts))
		query := `INSERT INTO casts (full_name, is_main_character, phone_number, play_id) VALUES `
		args := make([]interface{}, 0, (end-start)*4)
		for i, c := range casts[start:end] {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, c.FullName, c.IsMainCharacter, c.PhoneNumber, c.PlayID)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// ListWithCasts returns every play ordered by id, each with its casts
// ordered by id.
func (r *PlayRepo) ListWithCasts(ctx context.Context) ([]*model.Play, error) {
	const q = `SELECT id, title, duration_seconds, rating, genre, description, screenwriter
	           FROM plays ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Play
	byID := make(map[uint64]*model.Play)
	for rows.Next() {
		p := new(model.Play)
		var seconds int64
		var genre int
		if err := rows.Scan(&p.ID, &p.Title, &seconds, &p.Rating, &genre, &p.Description, &p.Screenwriter); err != nil {
			return nil, err
		}
		p.Duration = time.Duration(seconds) * time.Second
		p.Genre = model.Genre(genre)
		if !p.Genre.Valid() {
			return nil, fmt.Errorf("%w: play %d has genre %d", ErrInvalidGenre, p.ID, genre)
		}
		out = append(out, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qCasts = `SELECT id, full_name, is_main_character, phone_number, play_id FROM casts ORDER BY id`
	castRows, err := r.db.QueryContext(ctx, qCasts)
	if err != nil {
		return nil, err
	}
	defer castRows.Close()
	for castRows.Next() {
		c := new(model.Cast)
		if err := castRows.Scan(&c.ID, &c.FullName, &c.IsMainCharacter, &c.PhoneNumber, &c.PlayID); err != nil {
			return nil, err
		}
		if p, ok := byID[c.PlayID]; ok {
			p.Casts = append(p.Casts, c)
		}
	}
	if err := castRows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
