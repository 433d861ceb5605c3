package processor

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/iliyamo/theatre-data-processor/internal/dto"
	"github.com/iliyamo/theatre-data-processor/internal/model"
	"github.com/iliyamo/theatre-data-processor/internal/validation"
)

const (
	// minTicketsForExport is the total ticket count a theatre needs to be exported.
	minTicketsForExport = 20
	// Rows counted by the theatre export.
	restrictedFirstRow = 1
	restrictedLastRow  = 5

	premierRating = "Premier"
	mainCharacter = "Plays main character in '%s'."
)

// ExportTheatres renders theatres with at least minHalls halls and at
// least minTicketsForExport tickets as an indented JSON array.  Income
// and tickets only consider rows 1–5.
func ExportTheatres(ctx context.Context, src Source, minHalls int) (string, error) {
	theatres, err := src.Theatres(ctx, minHalls)
	if err != nil {
		return "", fmt.Errorf("load theatres: %w", err)
	}

	out := make([]dto.ExportTheatre, 0, len(theatres))
	for _, t := range theatres {
		if int(t.NumberOfHalls) < minHalls || len(t.Tickets) < minTicketsForExport {
			continue
		}
		var income float64
		tickets := make([]dto.ExportTheatreTicket, 0, len(t.Tickets))
		for _, tk := range t.Tickets {
			if !validation.InRange(tk.RowNumber, restrictedFirstRow, restrictedLastRow) {
				continue
			}
			income += tk.Price
			tickets = append(tickets, dto.ExportTheatreTicket{Price: tk.Price, RowNumber: tk.RowNumber})
		}
		slices.SortStableFunc(tickets, func(a, b dto.ExportTheatreTicket) int {
			return cmp.Compare(b.Price, a.Price)
		})
		out = append(out, dto.ExportTheatre{
			Name:        t.Name,
			Halls:       t.NumberOfHalls,
			TotalIncome: roundCents(income),
			Tickets:     tickets,
		})
	}
	slices.SortStableFunc(out, func(a, b dto.ExportTheatre) int {
		if c := cmp.Compare(b.Halls, a.Halls); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", fmt.Errorf("encode theatres: %w", err)
	}
	return strings.TrimRightFunc(buf.String(), unicode.IsSpace), nil
}

// ExportPlays renders plays rated at most maxRating as a <Plays> XML
// document listing each play's main characters.
func ExportPlays(ctx context.Context, src Source, maxRating float64) (string, error) {
	plays, err := src.Plays(ctx)
	if err != nil {
		return "", fmt.Errorf("load plays: %w", err)
	}

	selected := make([]*model.Play, 0, len(plays))
	for _, p := range plays {
		if float64(p.Rating) <= maxRating {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b *model.Play) int {
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(b.Genre, a.Genre)
	})

	doc := dto.ExportPlays{Plays: make([]dto.ExportPlay, 0, len(selected))}
	for _, p := range selected {
		actors := make([]dto.ExportActor, 0, len(p.Casts))
		for _, c := range p.Casts {
			if !c.IsMainCharacter {
				continue
			}
			actors = append(actors, dto.ExportActor{
				FullName:      c.FullName,
				MainCharacter: fmt.Sprintf(mainCharacter, p.Title),
			})
		}
		slices.SortStableFunc(actors, func(a, b dto.ExportActor) int {
			return strings.Compare(b.FullName, a.FullName)
		})

		doc.Plays = append(doc.Plays, dto.ExportPlay{
			Title:    p.Title,
			Duration: validation.FormatSpan(p.Duration),
			Rating:   ratingText(p.Rating),
			Genre:    p.Genre.String(),
			Actors:   dto.ExportActors{Actors: actors},
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode plays: %w", err)
	}
	return strings.TrimRightFunc(buf.String(), unicode.IsSpace), nil
}

func ratingText(r float32) string {
	if r == 0 {
		return premierRating
	}
	return formatRating(r)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
