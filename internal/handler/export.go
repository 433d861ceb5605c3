package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theatre-data-processor/internal/processor"
)

// ExportHandler renders the export documents.
type ExportHandler struct {
	src processor.Source
}

// NewExportHandler builds an ExportHandler reading from src.
func NewExportHandler(src processor.Source) *ExportHandler {
	if src == nil {
		panic("nil source passed to NewExportHandler")
	}
	return &ExportHandler{src: src}
}

// Theatres handles GET /v1/export/theatres?min_halls=N.
func (h *ExportHandler) Theatres(c echo.Context) error {
	minHalls, err := strconv.Atoi(c.QueryParam("min_halls"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "min_halls must be an integer"})
	}
	doc, err := processor.ExportTheatres(c.Request().Context(), h.src, minHalls)
	if err != nil {
		log.Printf("export: theatres failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not export theatres"})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// Plays handles GET /v1/export/plays?max_rating=R.
func (h *ExportHandler) Plays(c echo.Context) error {
	maxRating, err := strconv.ParseFloat(c.QueryParam("max_rating"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "max_rating must be a number"})
	}
	doc, err := processor.ExportPlays(c.Request().Context(), h.src, maxRating)
	if err != nil {
		log.Printf("export: plays failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not export plays"})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, []byte(doc))
}
