package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByRole(t *testing.T) {
	def, ok := ByRole("Ung/selvbesvarelse")
	require.True(t, ok)
	assert.Equal(t, RoleYouth, def.Role)

	def, ok = ByRole("Forælder (inklusiv plejeforældre)")
	require.True(t, ok)
	assert.Equal(t, RoleParent, def.Role)

	_, ok = ByRole("ung/selvbesvarelse")
	assert.False(t, ok, "role matching is exact")
	_, ok = ByRole("")
	assert.False(t, ok)
}

func TestYouthColumns(t *testing.T) {
	def := Youth()
	cols := def.Columns()

	// Order mirrors the entry order, group questions expand in place and the
	// derived score column comes last.
	require.NotEmpty(t, cols)
	assert.Equal(t, ColumnSerial, cols[0])
	assert.Equal(t, ColumnScore, cols[len(cols)-1])
	assert.Contains(t, cols, "Behandlingen hjalp mig")
	assert.Contains(t, cols, ColumnYouthFreeText)
	assert.Contains(t, cols, ColumnAZIdent)

	// 10 flat fields + 7 questions + free text + score.
	assert.Len(t, cols, 19)
	assert.Len(t, def.QuestionColumns(), 7)
}

func TestParentColumns(t *testing.T) {
	def := Parent()
	cols := def.Columns()

	assert.Equal(t, ColumnSerial, cols[0])
	assert.Equal(t, ColumnScore, cols[len(cols)-1])
	assert.Contains(t, cols, ColumnParentName)
	assert.Contains(t, cols, ColumnParentCPR)
	assert.Contains(t, cols, ColumnChildCPR)

	// 12 flat fields + 10 questions + 3 free texts + score.
	assert.Len(t, cols, 26)
	assert.Len(t, def.QuestionColumns(), 10)
}

func TestColumnsAreUnique(t *testing.T) {
	for _, def := range []*Definition{Youth(), Parent()} {
		seen := make(map[string]bool)
		for _, col := range def.Columns() {
			assert.False(t, seen[col], "role %s has duplicate column %q", def.Role, col)
			seen[col] = true
		}
	}
}

func TestInvertedQuestions(t *testing.T) {
	youth := Youth()
	assert.True(t, youth.Inverted["spg_barn_6"])
	assert.Len(t, youth.Inverted, 1)

	parent := Parent()
	assert.True(t, parent.Inverted["spg_foraelder_9"])
	assert.True(t, parent.Inverted["spg_foraelder_10"])
	assert.Len(t, parent.Inverted, 2)
}

func TestEntryIsGroup(t *testing.T) {
	assert.False(t, Entry{Source: "serial", Column: ColumnSerial}.IsGroup())
	assert.True(t, Entry{Source: "tabel", Group: []Field{{Source: "a", Column: "A"}}}.IsGroup())
}
