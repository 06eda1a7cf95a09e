// Package puzzle defines puzzle decks and loads them from TOML files and
// spreadsheets.
package puzzle

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Widget kinds as written in deck files
const (
	KindTranslator = "translator"
	KindWordOrder  = "word-order"
)

// Puzzle is one exercise: scrambled parts and the accepted assembled answers
type Puzzle struct {
	Kind    string   `toml:"kind" validate:"required,oneof=translator word-order"`
	Prompt  string   `toml:"prompt,omitempty"`
	Answers []string `toml:"answers" validate:"min=1,dive,required"`
	Parts   []string `toml:"parts" validate:"min=1,dive,required"`
}

// Deck is a named, ordered list of puzzles
type Deck struct {
	Name    string   `toml:"name" validate:"required"`
	Puzzles []Puzzle `toml:"puzzle" validate:"min=1,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report deck-file field names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks a single puzzle
func (p Puzzle) Validate() error {
	if err := validate.Struct(p); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// Validate checks the deck and every puzzle in it
func (d Deck) Validate() error {
	if err := validate.Struct(d); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}
