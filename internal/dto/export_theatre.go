package dto

// ExportTheatre is the aggregate written for each selected theatre.
// TotalIncome and Tickets only cover the restricted rows.
type ExportTheatre struct {
	Name        string                `json:"Name"`
	Halls       int8                  `json:"Halls"`
	TotalIncome float64               `json:"TotalIncome"`
	Tickets     []ExportTheatreTicket `json:"Tickets"`
}

// ExportTheatreTicket is a ticket inside ExportTheatre.
type ExportTheatreTicket struct {
	Price     float64 `json:"Price"`
	RowNumber int8    `json:"RowNumber"`
}
