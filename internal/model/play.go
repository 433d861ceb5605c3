package model

import "time"

// Play is a stage production.  Duration is kept between one hour and
// 23:59:59; a Rating of zero marks a premiere that has not been rated yet.
//
// Fields:
//  ID           – primary key identifier, zero until committed.
//  Title        – title of the play (up to 50 characters).
//  Duration     – running time.
//  Rating       – audience rating between 0 and 10.
//  Genre        – one of the Genre values.
//  Description  – free text up to 700 characters.
//  Screenwriter – author of the play.
//  Casts        – actors engaged in the play.
type Play struct {
	ID           uint64        // plays.id
	Title        string        // plays.title
	Duration     time.Duration // plays.duration_seconds
	Rating       float32       // plays.rating
	Genre        Genre         // plays.genre
	Description  string        // plays.description
	Screenwriter string        // plays.screenwriter
	Casts        []*Cast       // casts.play_id
}

const (
	// MinPlayDuration is the shortest running time a play may have.
	MinPlayDuration = time.Hour
	// MaxPlayDuration is the longest running time a play may have.
	MaxPlayDuration = 23*time.Hour + 59*time.Minute + 59*time.Second
)
