// Package processor turns raw import documents into persisted entities
// and persisted entities back into export documents.
//
// Importers report one line per top-level record: a success sentence or
// ErrorMessage.  Invalid records are skipped; every accepted record is
// staged and committed in a single SaveChanges call.  A document that
// cannot be parsed, or a failed commit, aborts the whole call.
package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/iliyamo/theatre-data-processor/internal/model"
)

// ErrMalformedInput wraps parse failures of a whole import document.
var ErrMalformedInput = errors.New("malformed input")

// ErrUnknownKind is returned by Import for an unsupported record kind.
var ErrUnknownKind = errors.New("unknown import kind")

// Store is the persistence handle the importers stage entities on.
type Store interface {
	AddPlays(plays ...*model.Play)
	AddCasts(casts ...*model.Cast)
	AddTheatres(theatres ...*model.Theatre)
	SaveChanges(ctx context.Context) error
}

// Source is the persistence handle the exporters read from.  Theatres
// may pre-filter on minHalls; the exporter applies the filter again.
type Source interface {
	Theatres(ctx context.Context, minHalls int) ([]*model.Theatre, error)
	Plays(ctx context.Context) ([]*model.Play, error)
}

// Kind names an import document type.
type Kind string

const (
	KindPlays    Kind = "plays"
	KindCasts    Kind = "casts"
	KindTheatres Kind = "theatres"
)

// ParseKind validates a kind name coming from a URL or command line.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPlays, KindCasts, KindTheatres:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Import dispatches text to the importer for kind.
func Import(ctx context.Context, store Store, kind Kind, text string) (string, error) {
	switch kind {
	case KindPlays:
		return ImportPlays(ctx, store, text)
	case KindCasts:
		return ImportCasts(ctx, store, text)
	case KindTheatres:
		return ImportTheatresAndTickets(ctx, store, text)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ImportSummary counts the outcome of one import call.
type ImportSummary struct {
	Kind     Kind
	Accepted int
	Rejected int
}

// Summarize counts accepted and rejected records in an import report.
func Summarize(kind Kind, report string) ImportSummary {
	s := ImportSummary{Kind: kind}
	if report == "" {
		return s
	}
	for _, line := range strings.Split(report, "\n") {
		if strings.TrimSpace(line) == ErrorMessage {
			s.Rejected++
		} else {
			s.Accepted++
		}
	}
	return s
}

// report accumulates import lines.
type report struct {
	b strings.Builder
}

func (r *report) line(format string, args ...any) {
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteByte('\n')
}

func (r *report) invalid() {
	r.b.WriteString(ErrorMessage)
	r.b.WriteByte('\n')
}

func (r *report) String() string {
	return strings.TrimRightFunc(r.b.String(), unicode.IsSpace)
}
