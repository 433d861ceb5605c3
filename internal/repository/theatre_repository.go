package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/theatre-data-processor/internal/model"
)

// TheatreRepo reads and writes theatres and the tickets they own.
type TheatreRepo struct {
	db *sql.DB
}

// NewTheatreRepo constructs a TheatreRepo with the provided DB handle.
func NewTheatreRepo(db *sql.DB) *TheatreRepo {
	return &TheatreRepo{db: db}
}

// CreateTx inserts a theatre within the caller's transaction and sets
// its generated ID.  The theatre's tickets are stamped with that ID but
// not written; use CreateTicketsBulkTx for them.
func (r *TheatreRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Theatre) error {
	const q = `INSERT INTO theatres (name, number_of_halls, director) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, t.Name, t.NumberOfHalls, t.Director)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	for _, ticket := range t.Tickets {
		ticket.TheatreID = t.ID
	}
	return nil
}

// CreateTicketsBulkTx inserts tickets in multi-row statements.  Each
// ticket must already carry its TheatreID.  An empty slice is a no-op.
func (r *TheatreRepo) CreateTicketsBulkTx(ctx context.Context, tx *sql.Tx, tickets []*model.Ticket) error {
	for start := 0; start < len(tickets); start += bulkChunk {
		end := min(start+bulkChunk, len(tickets))
		query := `INSERT INTO tickets (price, seat_row, play_id, theatre_id) VALUES `
		args := make([]interface{}, 0, (end-start)*4)
		for i, t := range tickets[start:end] {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, t.Price, t.RowNumber, t.PlayID, t.TheatreID)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// ListWithTickets returns theatres having at least minHalls halls,
// ordered by id, each with all of its tickets ordered by id.
func (r *TheatreRepo) ListWithTickets(ctx context.Context, minHalls int) ([]*model.Theatre, error) {
	const q = `SELECT id, name, number_of_halls, director
	           FROM theatres WHERE number_of_halls >= ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, minHalls)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Theatre
	byID := make(map[uint64]*model.Theatre)
	for rows.Next() {
		t := new(model.Theatre)
		if err := rows.Scan(&t.ID, &t.Name, &t.NumberOfHalls, &t.Director); err != nil {
			return nil, err
		}
		out = append(out, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	const qTickets = `SELECT tk.id, tk.price, tk.seat_row, tk.play_id, tk.theatre_id
	                  FROM tickets tk
	                  JOIN theatres th ON th.id = tk.theatre_id
	                  WHERE th.number_of_halls >= ?
	                  ORDER BY tk.id`
	ticketRows, err := r.db.QueryContext(ctx, qTickets, minHalls)
	if err != nil {
		return nil, err
	}
	defer ticketRows.Close()
	for ticketRows.Next() {
		tk := new(model.Ticket)
		if err := ticketRows.Scan(&tk.ID, &tk.Price, &tk.RowNumber, &tk.PlayID, &tk.TheatreID); err != nil {
			return nil, err
		}
		if t, ok := byID[tk.TheatreID]; ok {
			t.Tickets = append(t.Tickets, tk)
		}
	}
	if err := ticketRows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
