package report

import (
	"fmt"
	"html"
	"strings"

	"esq_report_bot/internal/domain/mapping"
)

// Pair is one label/value line of a digest table.
type Pair struct {
	Label string
	Value string
}

// FormatHTMLTable renders label/value pairs as a two-column presentational
// table, in the order given.
func FormatHTMLTable(pairs []Pair) string {
	var b strings.Builder
	b.WriteString(`<table border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse;">` + "\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "  <tr><td><strong>%s</strong></td><td>%s</td></tr>\n",
			html.EscapeString(p.Label), html.EscapeString(p.Value))
	}
	b.WriteString("</table>")
	return b.String()
}

// DigestSection renders one transformed row as a digest mail section: the
// respondent role line followed by the selected row columns for that role.
func DigestSection(row *Row, def *mapping.Definition) string {
	pairs := []Pair{
		{Label: "Udfyldt", Value: row.Get(mapping.ColumnCompleted)},
		{Label: mapping.ColumnTreatment, Value: row.Get(mapping.ColumnTreatment)},
		{Label: mapping.ColumnChildName, Value: row.Get(mapping.ColumnChildName)},
		{Label: mapping.ColumnChildCPR, Value: row.Get(mapping.ColumnChildCPR)},
		{Label: mapping.ColumnChildAge, Value: row.Get(mapping.ColumnChildAge)},
	}
	if def.Role == mapping.RoleParent {
		pairs = append(pairs,
			Pair{Label: "Forælder navn", Value: row.Get(mapping.ColumnParentName)},
			Pair{Label: "Forælder cpr-Nummer", Value: row.Get(mapping.ColumnParentCPR)},
		)
	}
	for _, col := range def.QuestionColumns() {
		pairs = append(pairs, Pair{Label: col, Value: row.Get(col)})
	}
	if def.Role == mapping.RoleParent {
		pairs = append(pairs,
			Pair{Label: mapping.ColumnParentGood, Value: row.Get(mapping.ColumnParentGood)},
			Pair{Label: mapping.ColumnParentImprove, Value: row.Get(mapping.ColumnParentImprove)},
			Pair{Label: mapping.ColumnParentOther, Value: row.Get(mapping.ColumnParentOther)},
		)
	} else {
		pairs = append(pairs, Pair{Label: mapping.ColumnYouthFreeText, Value: row.Get(mapping.ColumnYouthFreeText)})
	}
	pairs = append(pairs, Pair{Label: mapping.ColumnScore, Value: row.Get(mapping.ColumnScore)})

	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>Udfylder rolle:</strong> %s</p><br>", html.EscapeString(string(def.Role)))
	b.WriteString(FormatHTMLTable(pairs))
	b.WriteString("<br><br>")
	return b.String()
}

// FormatSubjectEmail assembles the outbound mail body for one subject:
// a heading with the child's CPR followed by all sections for that subject,
// separated by a horizontal rule.
func FormatSubjectEmail(cpr string, sections []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Ny(e) besvarelse(r) til ESQ formular for barn med CPR: <strong>%s</strong></p>",
		html.EscapeString(cpr))
	b.WriteString(strings.Join(sections, "<hr>"))
	return b.String()
}
