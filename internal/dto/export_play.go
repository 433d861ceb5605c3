package dto

import "encoding/xml"

// ExportPlays is the <Plays> document written by the play exporter.
type ExportPlays struct {
	XMLName xml.Name     `xml:"Plays"`
	Plays   []ExportPlay `xml:"Play"`
}

// ExportPlay carries its scalar fields as attributes.
type ExportPlay struct {
	Title    string       `xml:"Title,attr"`
	Duration string       `xml:"Duration,attr"`
	Rating   string       `xml:"Rating,attr"`
	Genre    string       `xml:"Genre,attr"`
	Actors   ExportActors `xml:"Actors"`
}

// ExportActors wraps the actor list so an empty <Actors> element is
// still written.
type ExportActors struct {
	Actors []ExportActor `xml:"Actor"`
}

// ExportActor is one main character of a play.
type ExportActor struct {
	FullName      string `xml:"FullName,attr"`
	MainCharacter string `xml:"MainCharacter,attr"`
}
