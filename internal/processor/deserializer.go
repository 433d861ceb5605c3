package processor

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/iliyamo/theatre-data-processor/internal/dto"
	"github.com/iliyamo/theatre-data-processor/internal/model"
	"github.com/iliyamo/theatre-data-processor/internal/validation"
)

// ErrorMessage is the report line for a rejected record.
const ErrorMessage = "Invalid data!"

const (
	successfulImportPlay    = "Successfully imported %s with genre %s and a rating of %s!"
	successfulImportActor   = "Successfully imported actor %s as a %s character!"
	successfulImportTheatre = "Successfully imported theatre %s with #%d tickets!"
)

// validGenres is checked before the genre is parsed into model.Genre.
// A genre must pass both checks.
var validGenres = []string{"Drama", "Comedy", "Romance", "Musical"}

// ImportPlays imports a <Plays> document.
func ImportPlays(ctx context.Context, store Store, xmlText string) (string, error) {
	var doc dto.ImportPlays
	if err := decodeXML(xmlText, &doc); err != nil {
		return "", fmt.Errorf("%w: plays: %w", ErrMalformedInput, err)
	}

	var r report
	plays := make([]*model.Play, 0, len(doc.Plays))
	for _, in := range doc.Plays {
		duration, err := validation.ParseSpan(in.Duration)
		if err != nil {
			r.invalid()
			continue
		}
		if !validation.Valid(in) || duration < model.MinPlayDuration || duration > model.MaxPlayDuration {
			r.invalid()
			continue
		}
		if !slices.Contains(validGenres, in.Genre) {
			r.invalid()
			continue
		}
		genre, err := model.ParseGenre(in.Genre)
		if err != nil {
			r.invalid()
			continue
		}

		play := &model.Play{
			Title:        in.Title,
			Duration:     duration,
			Rating:       in.RatingValue(),
			Genre:        genre,
			Description:  in.Description,
			Screenwriter: in.Screenwriter,
		}
		plays = append(plays, play)
		r.line(successfulImportPlay, play.Title, play.Genre, formatRating(play.Rating))
	}

	store.AddPlays(plays...)
	if err := store.SaveChanges(ctx); err != nil {
		return "", err
	}
	return r.String(), nil
}

// ImportCasts imports a <Casts> document.
func ImportCasts(ctx context.Context, store Store, xmlText string) (string, error) {
	var doc dto.ImportCasts
	if err := decodeXML(xmlText, &doc); err != nil {
		return "", fmt.Errorf("%w: casts: %w", ErrMalformedInput, err)
	}

	var r report
	casts := make([]*model.Cast, 0, len(doc.Casts))
	for _, in := range doc.Casts {
		isMain, ok := validation.ParseFlag(in.IsMainCharacter)
		if !ok {
			r.invalid()
			continue
		}
		if !validation.Valid(in) {
			r.invalid()
			continue
		}

		cast := &model.Cast{
			FullName:        in.FullName,
			IsMainCharacter: isMain,
			PhoneNumber:     in.PhoneNumber,
			PlayID:          in.PlayID,
		}
		casts = append(casts, cast)

		role := "lesser"
		if cast.IsMainCharacter {
			role = "main"
		}
		r.line(successfulImportActor, cast.FullName, role)
	}

	store.AddCasts(casts...)
	if err := store.SaveChanges(ctx); err != nil {
		return "", err
	}
	return r.String(), nil
}

// ImportTheatresAndTickets imports a JSON array of theatres with their
// tickets.  Rejected tickets are dropped without a report line; the
// theatre is still imported and its line counts only accepted tickets.
func ImportTheatresAndTickets(ctx context.Context, store Store, jsonText string) (string, error) {
	var doc []dto.ImportTheatre
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return "", fmt.Errorf("%w: theatres: %w", ErrMalformedInput, err)
	}

	var r report
	theatres := make([]*model.Theatre, 0, len(doc))
	for _, in := range doc {
		if !validation.Valid(in) {
			r.invalid()
			continue
		}

		theatre := &model.Theatre{
			Name:          in.Name,
			NumberOfHalls: int8(in.NumberOfHalls),
			Director:      in.Director,
		}
		for _, tk := range in.Tickets {
			if !validation.Valid(tk) {
				continue
			}
			theatre.Tickets = append(theatre.Tickets, &model.Ticket{
				Price:     tk.Price,
				RowNumber: int8(tk.RowNumber),
				PlayID:    tk.PlayID,
			})
		}

		theatres = append(theatres, theatre)
		r.line(successfulImportTheatre, theatre.Name, len(theatre.Tickets))
	}

	store.AddTheatres(theatres...)
	if err := store.SaveChanges(ctx); err != nil {
		return "", err
	}
	return r.String(), nil
}

// decodeXML decodes the root element of text into v.  The encoding named
// in an XML declaration is ignored because text is already decoded.
func decodeXML(text string, v any) error {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return dec.Decode(v)
}

// formatRating renders a rating with the fewest digits that round-trip.
func formatRating(r float32) string {
	return strconv.FormatFloat(float64(r), 'f', -1, 32)
}
