package puzzle

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DecodeDeck parses and validates a TOML deck
func DecodeDeck(r io.Reader) (Deck, error) {
	var d Deck
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Deck{}, fmt.Errorf("failed to parse deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}

// LoadDeckFile reads a TOML deck from disk
func LoadDeckFile(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	d, err := DecodeDeck(f)
	if err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// EncodeDeck writes d as TOML
func EncodeDeck(d Deck) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetArraysMultiline(false)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode deck: %w", err)
	}
	return buf.Bytes(), nil
}
