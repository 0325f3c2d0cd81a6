// Package excel builds and manipulates the xlsx artifacts the report flows
// store in the document library. All operations work on in-memory workbook
// bytes; persistence belongs to the library client.
package excel

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FormatOptions describes the presentation formatting applied to a report
// sheet after create or append.
type FormatOptions struct {
	BoldHeader      bool
	SortDescending  bool // sort data rows by the first column, descending
	ColumnWidth     float64
	FreezeHeader    bool
	HorizontalAlign string
	VerticalAlign   string
}

// BuildWorkbook creates a new workbook holding a header row followed by the
// given rows on the named sheet.
func BuildWorkbook(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("error naming sheet %q: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

// AppendRows adds rows beneath the existing content of the named sheet and
// returns the updated workbook bytes.
func AppendRows(content []byte, sheet string, rows [][]string) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	existing, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	next := len(existing) + 1
	for i, row := range rows {
		if err := writeRow(f, sheet, next+i, row); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

// FormatWorkbook applies presentation formatting to the named sheet:
// optional descending sort of the data rows, header styling, column widths
// and a frozen header row.
func FormatWorkbook(content []byte, sheet string, opts FormatOptions) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}

	width := 1
	for _, row := range all {
		if len(row) > width {
			width = len(row)
		}
	}

	if opts.SortDescending && len(all) > 2 {
		data := all[1:]
		sort.SliceStable(data, func(i, j int) bool {
			return firstCell(data[i]) > firstCell(data[j])
		})
		for i, row := range data {
			if err := writeRow(f, sheet, i+2, padRow(row, width)); err != nil {
				return nil, err
			}
		}
	}

	align := &excelize.Alignment{
		Horizontal: defaultString(opts.HorizontalAlign, "left"),
		Vertical:   defaultString(opts.VerticalAlign, "top"),
	}
	if opts.BoldHeader {
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: align,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating header style: %w", err)
		}
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return nil, fmt.Errorf("error styling header row: %w", err)
		}
	}
	if len(all) > 1 {
		bodyStyle, err := f.NewStyle(&excelize.Style{Alignment: align})
		if err != nil {
			return nil, fmt.Errorf("error creating body style: %w", err)
		}
		if err := f.SetRowStyle(sheet, 2, len(all), bodyStyle); err != nil {
			return nil, fmt.Errorf("error styling body rows: %w", err)
		}
	}

	if opts.ColumnWidth > 0 {
		lastCol, err := excelize.ColumnNumberToName(width)
		if err != nil {
			return nil, fmt.Errorf("error resolving last column: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", lastCol, opts.ColumnWidth); err != nil {
			return nil, fmt.Errorf("error setting column widths: %w", err)
		}
	}

	if opts.FreezeHeader {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, fmt.Errorf("error freezing header row: %w", err)
		}
	}

	return workbookBytes(f)
}

// Recipient is one identifier/address pair from the approved-recipient
// sheet, as written in the workbook (no normalization applied).
type Recipient struct {
	Ident string
	Email string
}

// ParseRecipientSheet reads the approved-recipient table from the first
// sheet of the workbook. The header row must carry az-ident and email
// columns; rows with a blank identifier or address are dropped.
func ParseRecipientSheet(content []byte) ([]Recipient, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error opening recipient workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading recipient sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.New("recipient sheet is empty")
	}

	identCol, emailCol := -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "az-ident":
			identCol = i
		case "email":
			emailCol = i
		}
	}
	if identCol < 0 || emailCol < 0 {
		return nil, errors.New("recipient sheet is missing the az-ident or email column")
	}

	var out []Recipient
	for _, row := range rows[1:] {
		ident := cellAt(row, identCol)
		email := cellAt(row, emailCol)
		if ident == "" || email == "" {
			continue
		}
		out = append(out, Recipient{Ident: ident, Email: email})
	}
	return out, nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return fmt.Errorf("error resolving row %d: %w", rowIdx, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("error writing row %d: %w", rowIdx, err)
	}
	return nil
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
