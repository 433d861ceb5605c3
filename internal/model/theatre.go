package model

// Theatre represents a venue that sells tickets for plays.  A theatre
// owns zero or more tickets.  This struct corresponds to a row in the
// `theatres` table.
//
// Fields:
//  ID            – primary key identifier, zero until committed.
//  Name          – display name of the theatre.
//  NumberOfHalls – how many halls the theatre has (1–10).
//  Director      – name of the theatre's director.
//  Tickets       – tickets sold by this theatre.
type Theatre struct {
	ID            uint64    // theatres.id
	Name          string    // theatres.name
	NumberOfHalls int8      // theatres.number_of_halls
	Director      string    // theatres.director
	Tickets       []*Ticket // tickets.theatre_id
}
