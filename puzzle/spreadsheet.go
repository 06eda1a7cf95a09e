package puzzle

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet columns; header matching is case-insensitive
const (
	ColumnKind    = "kind"
	ColumnPrompt  = "prompt"
	ColumnAnswers = "answers"
	ColumnParts   = "parts"

	// ListSeparator separates entries of the answers and parts columns
	// Entries cannot contain it; ExportSpreadsheet rejects them
	ListSeparator = "|"
)

var (
	requiredColumns = []string{ColumnKind, ColumnAnswers, ColumnParts}
	exportColumns   = []string{ColumnKind, ColumnPrompt, ColumnAnswers, ColumnParts}
)

// ImportResult is the outcome of a spreadsheet import
type ImportResult struct {
	Deck      Deck
	TotalRows int
	Errors    []RowError
}

// LoadSpreadsheet imports puzzles from the first sheet of an xlsx workbook
// Invalid rows are reported in ImportResult.Errors and skipped
func LoadSpreadsheet(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ValidationErrors{{Field: "file", Message: "spreadsheet has no sheets"}}
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ValidationErrors{{Field: "file", Message: "spreadsheet must have a header row"}}
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	var missing ValidationErrors
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			missing = append(missing, ValidationError{Field: col, Message: "column is required", Rule: "required"})
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}

	result := &ImportResult{Deck: Deck{Name: sheetName}}
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		result.TotalRows++
		p, rowErrs := parseRow(row, headerMap, i+2)
		if len(rowErrs) > 0 {
			result.Errors = append(result.Errors, rowErrs...)
			continue
		}
		result.Deck.Puzzles = append(result.Deck.Puzzles, p)
	}
	return result, nil
}

func parseRow(row []string, headerMap map[string]int, rowNum int) (Puzzle, []RowError) {
	raw := func(name string) string {
		if idx, ok := headerMap[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}
	cell := func(name string) string { return strings.TrimSpace(raw(name)) }

	p := Puzzle{
		Kind:    strings.ToLower(cell(ColumnKind)),
		Prompt:  cell(ColumnPrompt),
		Answers: SplitList(cell(ColumnAnswers)),
		Parts:   SplitParts(raw(ColumnParts)),
	}

	err := p.Validate()
	if err == nil {
		return p, nil
	}

	var rowErrs []RowError
	for _, ve := range ToValidationErrors(err) {
		col := ve.Field
		if i := strings.IndexAny(col, ".["); i >= 0 {
			col = col[:i]
		}
		rowErrs = append(rowErrs, RowError{
			Row:     rowNum,
			Column:  col,
			Message: ve.Message,
			Value:   cell(col),
		})
	}
	return p, rowErrs
}

// SplitList splits a cell on ListSeparator, trimming entries and dropping empty ones
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ListSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitParts splits a parts cell on ListSeparator keeping whitespace inside
// fragments; only entries that are entirely empty are dropped
func SplitParts(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ListSeparator) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ExportSpreadsheet writes a deck as an xlsx workbook with one sheet named after the deck
func ExportSpreadsheet(d Deck) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := d.Name
	if sheetName == "" {
		sheetName = "Puzzles"
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range exportColumns {
		if err := setCell(f, sheetName, i+1, 1, header); err != nil {
			return nil, err
		}
	}
	for r, p := range d.Puzzles {
		if err := checkSeparator(r, p); err != nil {
			return nil, err
		}
		values := []string{
			p.Kind,
			p.Prompt,
			strings.Join(p.Answers, ListSeparator),
			strings.Join(p.Parts, ListSeparator),
		}
		for c, v := range values {
			if err := setCell(f, sheetName, c+1, r+2, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func checkSeparator(index int, p Puzzle) error {
	lists := []struct {
		column string
		values []string
	}{
		{ColumnAnswers, p.Answers},
		{ColumnParts, p.Parts},
	}
	for _, l := range lists {
		for i, v := range l.values {
			if strings.Contains(v, ListSeparator) {
				return ValidationErrors{{
					Field:   fmt.Sprintf("puzzle[%d].%s[%d]", index, l.column, i),
					Message: fmt.Sprintf("must not contain %q", ListSeparator),
					Value:   v,
					Rule:    "excludes",
				}}
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", cell, err)
	}
	return nil
}
