// Package handler exposes the import and export pipelines over HTTP.
package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theatre-data-processor/internal/middleware"
	"github.com/iliyamo/theatre-data-processor/internal/processor"
	"github.com/iliyamo/theatre-data-processor/internal/repository"
	"github.com/iliyamo/theatre-data-processor/internal/service"
)

// publishTimeout bounds the event publish after a committed import.
const publishTimeout = 5 * time.Second

// ImportHandler runs import documents posted as raw request bodies.
type ImportHandler struct {
	newStore func() processor.Store
	publish  service.Publisher
}

// NewImportHandler builds an ImportHandler that commits into db.  Every
// request gets its own TheatreContext.  publish may be nil.
func NewImportHandler(db *sql.DB, publish service.Publisher) *ImportHandler {
	if db == nil {
		panic("nil db passed to NewImportHandler")
	}
	return &ImportHandler{
		newStore: func() processor.Store { return repository.NewTheatreContext(db) },
		publish:  publish,
	}
}

// Import handles POST /v1/import/:kind and answers with the text report.
func (h *ImportHandler) Import(c echo.Context) error {
	kind, err := processor.ParseKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown import kind"})
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read request body"})
	}

	ctx := c.Request().Context()
	report, err := processor.Import(ctx, h.newStore(), kind, string(body))
	if err != nil {
		if errors.Is(err, processor.ErrMalformedInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed document"})
		}
		log.Printf("import: %s failed: %v", kind, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save import"})
	}

	sum := processor.Summarize(kind, report)
	log.Printf("import: %s accepted=%d rejected=%d subject=%v", kind, sum.Accepted, sum.Rejected, c.Get(middleware.ContextSubject))
	h.announce(ctx, sum)
	return c.String(http.StatusOK, report)
}

func (h *ImportHandler) announce(ctx context.Context, sum processor.ImportSummary) {
	if h.publish == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	ev := service.NewImportEvent(string(sum.Kind), sum.Accepted, sum.Rejected, "http")
	if err := h.publish(ctx, ev); err != nil {
		log.Printf("import: publish batch %s failed: %v", ev.BatchID, err)
	}
}
