package dto

// ImportTheatre is one element of the theatres JSON array.  Tickets are
// validated separately from the theatre that carries them.
type ImportTheatre struct {
	Name          string         `json:"Name" validate:"required,notblank,min=4,max=30"`
	NumberOfHalls int            `json:"NumberOfHalls" validate:"gte=1,lte=10"`
	Director      string         `json:"Director" validate:"required,notblank,min=4,max=30"`
	Tickets       []ImportTicket `json:"Tickets"`
}

// ImportTicket is one entry of a theatre's Tickets array.
type ImportTicket struct {
	Price     float64 `json:"Price" validate:"gte=1,lte=100"`
	RowNumber int     `json:"RowNumber" validate:"gte=1,lte=10"`
	PlayID    uint64  `json:"PlayId"`
}
