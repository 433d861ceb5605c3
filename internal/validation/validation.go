// Package validation checks import DTOs against the constraints declared
// in their `validate` struct tags.  Callers only learn whether a value
// passed; the individual violations are not reported.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// phonePattern is the accepted shape of a cast member's phone number.
	phonePattern = regexp.MustCompile(`^(\+44-\d{2}-\d{3}-\d{4})\b`)
	// flagPattern is the accepted spelling of a boolean token.
	flagPattern = regexp.MustCompile(`^(true|false)\b`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "notblank", notBlank)
	mustRegister(v, "phone", wholeMatch(phonePattern))
	mustRegister(v, "mainflag", wholeMatch(flagPattern))
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Valid reports whether v satisfies every constraint declared on its
// fields.  Nested slices are not descended into.
func Valid(v any) bool {
	return validate.Struct(v) == nil
}

// notBlank fails strings that are empty or whitespace only.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// wholeMatch builds a check that passes when re matches the entire
// field.  Empty values pass; required-ness is a separate tag.
func wholeMatch(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return MatchesWhole(re, fl.Field().String())
	}
}

// MatchesWhole reports whether re matches all of s.  An empty s matches.
func MatchesWhole(re *regexp.Regexp, s string) bool {
	if s == "" {
		return true
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// ParseFlag converts a boolean token into a bool.  Surrounding
// whitespace and letter case are ignored; the declared `mainflag`
// constraint is what restricts the spelling.
func ParseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// InRange reports whether lo <= v <= hi.
func InRange[T ~int | ~int8 | ~int64 | ~float32 | ~float64](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
