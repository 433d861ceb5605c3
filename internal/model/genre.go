package model

import "fmt"

// Genre classifies a play.  The numeric values are stored in the
// plays.genre column and define the export sort order.
type Genre int

const (
	GenreDrama Genre = iota + 1
	GenreComedy
	GenreRomance
	GenreMusical
)

var genreNames = map[Genre]string{
	GenreDrama:   "Drama",
	GenreComedy:  "Comedy",
	GenreRomance: "Romance",
	GenreMusical: "Musical",
}

// String returns the enum name, or Genre(n) for values outside the enum.
func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Genre(%d)", int(g))
}

// Valid reports whether g is a declared genre.
func (g Genre) Valid() bool {
	_, ok := genreNames[g]
	return ok
}

// ParseGenre maps an exact enum name to its Genre.  Matching is case
// sensitive.
func ParseGenre(s string) (Genre, error) {
	for g, name := range genreNames {
		if name == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown genre %q", s)
}
