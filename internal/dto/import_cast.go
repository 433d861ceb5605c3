package dto

import "encoding/xml"

// ImportCasts is the <Casts> document accepted by the cast importer.
type ImportCasts struct {
	XMLName xml.Name     `xml:"Casts"`
	Casts   []ImportCast `xml:"Cast"`
}

// ImportCast is one <Cast> element.  PlayId is carried over as-is; its
// existence is not checked on import.
type ImportCast struct {
	FullName        string `xml:"FullName" validate:"required,notblank,min=4,max=30"`
	IsMainCharacter string `xml:"IsMainCharacter" validate:"required,mainflag"`
	PhoneNumber     string `xml:"PhoneNumber" validate:"required,phone"`
	PlayID          uint64 `xml:"PlayId"`
}
