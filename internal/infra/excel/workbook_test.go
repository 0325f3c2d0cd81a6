package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheetRows(t *testing.T, content []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestBuildWorkbook(t *testing.T) {
	content, err := BuildWorkbook("Besvarelser",
		[]string{"Serial number", "Oprettet"},
		[][]string{{"2", "2024-05-02 08:00:00"}, {"1", "2024-05-01 08:00:00"}},
	)
	require.NoError(t, err)

	rows := sheetRows(t, content, "Besvarelser")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Serial number", "Oprettet"}, rows[0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "1", rows[2][0])
}

func TestAppendRows(t *testing.T) {
	content, err := BuildWorkbook("Besvarelser", []string{"Serial number"}, [][]string{{"1"}})
	require.NoError(t, err)

	updated, err := AppendRows(content, "Besvarelser", [][]string{{"2"}, {"3"}})
	require.NoError(t, err)

	rows := sheetRows(t, updated, "Besvarelser")
	require.Len(t, rows, 4)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "3", rows[3][0])
}

func TestAppendRowsUnknownSheet(t *testing.T) {
	content, err := BuildWorkbook("Besvarelser", []string{"Serial number"}, nil)
	require.NoError(t, err)

	_, err = AppendRows(content, "Forkert", [][]string{{"1"}})
	assert.Error(t, err)
}

func TestFormatWorkbookSortsDescending(t *testing.T) {
	content, err := BuildWorkbook("Besvarelser",
		[]string{"Serial number", "Navn"},
		[][]string{{"100", "a"}, {"300", "b"}, {"200", "c"}},
	)
	require.NoError(t, err)

	formatted, err := FormatWorkbook(content, "Besvarelser", FormatOptions{
		BoldHeader:     true,
		SortDescending: true,
		ColumnWidth:    100,
		FreezeHeader:   true,
	})
	require.NoError(t, err)

	rows := sheetRows(t, formatted, "Besvarelser")
	require.Len(t, rows, 4)
	assert.Equal(t, "Serial number", rows[0][0], "header stays in place")
	assert.Equal(t, "300", rows[1][0])
	assert.Equal(t, "200", rows[2][0])
	assert.Equal(t, "100", rows[3][0])
}

func TestFormatWorkbookHeaderOnly(t *testing.T) {
	content, err := BuildWorkbook("Besvarelser", []string{"Serial number"}, nil)
	require.NoError(t, err)

	formatted, err := FormatWorkbook(content, "Besvarelser", FormatOptions{
		BoldHeader:     true,
		SortDescending: true,
		FreezeHeader:   true,
	})
	require.NoError(t, err)

	rows := sheetRows(t, formatted, "Besvarelser")
	require.Len(t, rows, 1)
}

func TestParseRecipientSheet(t *testing.T) {
	content, err := BuildWorkbook("Godkendte",
		[]string{"AZ-Ident", "Email"},
		[][]string{
			{"AZ12345", "worker@example.org"},
			{"", "dangling@example.org"},
			{"AZ99999", ""},
			{" AZ55555 ", " other@example.org "},
		},
	)
	require.NoError(t, err)

	recipients, err := ParseRecipientSheet(content)
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, Recipient{Ident: "AZ12345", Email: "worker@example.org"}, recipients[0])
	assert.Equal(t, Recipient{Ident: "AZ55555", Email: "other@example.org"}, recipients[1], "cells are trimmed, not otherwise normalized")
}

func TestParseRecipientSheetMissingColumns(t *testing.T) {
	content, err := BuildWorkbook("Godkendte", []string{"Navn", "Telefon"}, nil)
	require.NoError(t, err)

	_, err = ParseRecipientSheet(content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "az-ident or email")
}

func TestParseRecipientSheetNotAWorkbook(t *testing.T) {
	_, err := ParseRecipientSheet([]byte("not an xlsx file"))
	assert.Error(t, err)
}
