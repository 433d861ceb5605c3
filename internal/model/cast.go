package model

// Cast is an actor engaged in a play.  Main characters are the ones
// listed by the play export.
type Cast struct {
	ID              uint64 // casts.id
	FullName        string // casts.full_name
	IsMainCharacter bool   // casts.is_main_character
	PhoneNumber     string // casts.phone_number
	PlayID          uint64 // casts.play_id
}
