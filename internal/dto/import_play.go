// Package dto declares the wire shapes read by the importers and written
// by the exporters.  DTOs never reach the database; the processor maps
// them to and from model entities.
package dto

import "encoding/xml"

// ImportPlays is the <Plays> document accepted by the play importer.
type ImportPlays struct {
	XMLName xml.Name     `xml:"Plays"`
	Plays   []ImportPlay `xml:"Play"`
}

// ImportPlay is one <Play> element.  Duration stays textual here because
// it is parsed outside the declarative constraints.
type ImportPlay struct {
	Title        string   `xml:"Title" validate:"required,notblank,min=4,max=50"`
	Duration     string   `xml:"Duration" validate:"required,notblank"`
	Rating       *float32 `xml:"Rating" validate:"omitempty,gte=0,lte=10"`
	LegacyRating *float32 `xml:"Raiting" validate:"omitempty,gte=0,lte=10"` // misspelled element found in older exports
	Genre        string   `xml:"Genre" validate:"required,notblank"`
	Description  string   `xml:"Description" validate:"required,notblank,max=700"`
	Screenwriter string   `xml:"Screenwriter" validate:"required,notblank,min=4,max=30"`
}

// RatingValue returns the rating from whichever element was present,
// preferring <Rating>.  A missing rating reads as 0.
func (p ImportPlay) RatingValue() float32 {
	switch {
	case p.Rating != nil:
		return *p.Rating
	case p.LegacyRating != nil:
		return *p.LegacyRating
	}
	return 0
}
