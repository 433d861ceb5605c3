package dto

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportPlayRatingValue(t *testing.T) {
	t.Parallel()

	doc := `<Plays>
  <Play><Title>First</Title><Rating>7.5</Rating></Play>
  <Play><Title>Second</Title><Raiting>3.2</Raiting></Play>
  <Play><Title>Third</Title></Play>
</Plays>`

	var plays ImportPlays
	require.NoError(t, xml.Unmarshal([]byte(doc), &plays))
	require.Len(t, plays.Plays, 3)

	assert.Equal(t, float32(7.5), plays.Plays[0].RatingValue())
	assert.Equal(t, float32(3.2), plays.Plays[1].RatingValue())
	assert.Equal(t, float32(0), plays.Plays[2].RatingValue())
}

func TestExportPlaysEmptyActors(t *testing.T) {
	t.Parallel()

	out, err := xml.Marshal(ExportPlays{Plays: []ExportPlay{{Title: "T", Duration: "01:00:00", Rating: "Premier", Genre: "Drama"}}})
	require.NoError(t, err)
	assert.Equal(t, `<Plays><Play Title="T" Duration="01:00:00" Rating="Premier" Genre="Drama"><Actors></Actors></Play></Plays>`, string(out))
}
