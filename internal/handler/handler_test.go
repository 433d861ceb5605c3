package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theatre-data-processor/internal/database"
	"github.com/iliyamo/theatre-data-processor/internal/queue"
	"github.com/iliyamo/theatre-data-processor/internal/repository"
)

const playsDoc = `<?xml version="1.0" encoding="utf-16"?>
<Plays>
  <Play><Title>Hamlet Prince</Title><Duration>03:10:00</Duration><Rating>4.5</Rating><Genre>Drama</Genre>
    <Description>A prince.</Description><Screenwriter>William Shakespeare</Screenwriter></Play>
  <Play><Title>Short</Title><Duration>00:30:00</Duration><Rating>5</Rating><Genre>Drama</Genre>
    <Description>Too short.</Description><Screenwriter>Someone Else</Screenwriter></Play>
</Plays>`

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(context.Background(), db, database.DriverSQLite))
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func doImport(t *testing.T, h *ImportHandler, kind, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/import/"+kind, strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/import/:kind")
	c.SetParamNames("kind")
	c.SetParamValues(kind)
	require.NoError(t, h.Import(c))
	return rec
}

func doExport(t *testing.T, fn echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))
	return rec
}

func TestImport_PlaysThenExport(t *testing.T) {
	db := setupDB(t)

	var events []queue.ImportCompletedEvent
	h := NewImportHandler(db, func(_ context.Context, ev queue.ImportCompletedEvent) error {
		events = append(events, ev)
		return nil
	})

	rec := doImport(t, h, "plays", playsDoc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully imported Hamlet Prince with genre Drama and a rating of 4.5!\nInvalid data!", rec.Body.String())
	require.Len(t, events, 1)
	assert.Equal(t, "plays", events[0].Kind)
	assert.Equal(t, 1, events[0].Accepted)
	assert.Equal(t, 1, events[0].Rejected)

	x := NewExportHandler(repository.NewTheatreContext(db))
	rec = doExport(t, x.Plays, "/v1/export/plays?max_rating=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")
	assert.Contains(t, rec.Body.String(), `Title="Hamlet Prince"`)

	rec = doExport(t, x.Theatres, "/v1/export/theatres?min_halls=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")
	assert.Equal(t, "[]", rec.Body.String())
}

func TestImport_Errors(t *testing.T) {
	db := setupDB(t)
	h := NewImportHandler(db, func(context.Context, queue.ImportCompletedEvent) error {
		return errors.New("broker down")
	})

	assert.Equal(t, http.StatusNotFound, doImport(t, h, "seats", "").Code)
	assert.Equal(t, http.StatusBadRequest, doImport(t, h, "theatres", "{not json").Code)
	assert.Equal(t, http.StatusBadRequest, doImport(t, h, "casts", "<Casts><Cast>").Code)

	rec := doImport(t, h, "casts", `<Casts><Cast><FullName>Lost Actor</FullName><IsMainCharacter>true</IsMainCharacter>`+
		`<PhoneNumber>+44-11-222-3333</PhoneNumber><PlayId>99</PlayId></Cast></Casts>`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Publish failures do not fail the request.
	rec = doImport(t, h, "theatres", `[{"Name": "The Globe", "NumberOfHalls": 6, "Director": "Sam Wanamaker", "Tickets": []}]`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully imported theatre The Globe with #0 tickets!", rec.Body.String())
}

func TestExport_BadParams(t *testing.T) {
	t.Parallel()

	x := NewExportHandler(repository.NewTheatreContext(setupDB(t)))
	assert.Equal(t, http.StatusBadRequest, doExport(t, x.Theatres, "/v1/export/theatres").Code)
	assert.Equal(t, http.StatusBadRequest, doExport(t, x.Theatres, "/v1/export/theatres?min_halls=two").Code)
	assert.Equal(t, http.StatusBadRequest, doExport(t, x.Plays, "/v1/export/plays?max_rating=high").Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := doExport(t, Health, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
