package model

// Ticket is a priced seat row for a play, sold by exactly one theatre.
//
// Fields:
//  ID        – primary key identifier, zero until committed.
//  Price     – ticket price (1.00–100.00).
//  RowNumber – row in the hall (1–10).
//  PlayID    – play the ticket admits to.
//  TheatreID – theatre that owns the ticket.
type Ticket struct {
	ID        uint64  // tickets.id
	Price     float64 // tickets.price
	RowNumber int8    // tickets.row_number
	PlayID    uint64  // tickets.play_id
	TheatreID uint64  // tickets.theatre_id
}
