// Package mapping declares how raw ESQ form answers translate to canonical
// report columns. The answer keys coming from the webform API are
// inconsistent in spelling and casing, so the translation tables are
// hardcoded here rather than derived from the form definition.
package mapping

// Role identifies which party filled out the form. The values are the exact
// strings the webform stores in the respondent-role answer.
type Role string

const (
	RoleYouth  Role = "Ung/selvbesvarelse"
	RoleParent Role = "Forælder (inklusiv plejeforældre)"
)

// Canonical column names shared between the spreadsheet snapshots and the
// digest mail sections.
const (
	ColumnSerial    = "Serial number"
	ColumnCreated   = "Oprettet"
	ColumnCompleted = "Gennemført"
	ColumnEmail     = "Tilkoblet email"
	ColumnAZIdent   = "AZ-ident"
	ColumnScore     = "Average answer score"
	ColumnRole      = "Hvem udfylder spørgeskemaet"
	ColumnTreatment = "Behandling"
	ColumnChildName = "Barnets/Den unges navn"
	ColumnChildCPR  = "Barnets/Den unges CPR-nummer"
	ColumnChildAge  = "Barnets/Den unges alder"

	ColumnParentName = "Navn"
	ColumnParentCPR  = "CPR-nummer"

	ColumnYouthFreeText = "Her er plads til, at du kan skrive, hvad du tænker eller føler om behandlingen"
	ColumnParentGood    = "Hvad var rigtig godt ved behandlingen?"
	ColumnParentImprove = "Var der noget du ikke synes om eller noget der kan forbedres?"
	ColumnParentOther   = "Er der andet du ønsker at fortælle os, om det forløb I har haft?"
)

// Field maps one raw answer key to its report column.
type Field struct {
	Source string
	Column string
}

// Entry is one mapping position: either a flat field or a question group (a
// nested object of sub-question answers). An entry with a non-empty Group is
// a question group and Column is unused.
type Entry struct {
	Source string
	Column string
	Group  []Field
}

// IsGroup reports whether the entry maps a nested question table.
func (e Entry) IsGroup() bool {
	return len(e.Group) > 0
}

// Definition declares the full answer-to-column translation for one
// respondent role. Definitions are static configuration data; callers must
// treat them as immutable.
type Definition struct {
	Role    Role
	Entries []Entry
	// Inverted holds the sub-question keys whose answer scale polarity is
	// reversed relative to the default scoring table.
	Inverted map[string]bool
}

// Columns returns the full ordered list of report columns the definition
// produces, including the derived average-score column.
func (d *Definition) Columns() []string {
	var cols []string
	for _, entry := range d.Entries {
		if entry.IsGroup() {
			for _, f := range entry.Group {
				cols = append(cols, f.Column)
			}
			continue
		}
		cols = append(cols, entry.Column)
	}
	return append(cols, ColumnScore)
}

// QuestionColumns returns the ordered columns of all question groups.
func (d *Definition) QuestionColumns() []string {
	var cols []string
	for _, entry := range d.Entries {
		for _, f := range entry.Group {
			cols = append(cols, f.Column)
		}
	}
	return cols
}

// ByRole returns a definition for the given raw respondent-role answer, or
// ok=false when the role is not one this report covers.
func ByRole(role string) (*Definition, bool) {
	switch Role(role) {
	case RoleYouth:
		return Youth(), true
	case RoleParent:
		return Parent(), true
	default:
		return nil, false
	}
}

// Youth returns the mapping definition for forms the young person filled out
// themselves.
func Youth() *Definition {
	return &Definition{
		Role: RoleYouth,
		Entries: []Entry{
			{Source: "serial", Column: ColumnSerial},
			{Source: "created", Column: ColumnCreated},
			{Source: "completed", Column: ColumnCompleted},
			{Source: "email", Column: ColumnEmail},
			{Source: "az_ident", Column: ColumnAZIdent},
			{Source: "hvem_udfylder_spoergeskemaet", Column: ColumnRole},
			{Source: "navn_manuelt", Column: ColumnChildName},
			{Source: "cpr_nummer_manuelt", Column: ColumnChildCPR},
			{Source: "beregnet_alder", Column: ColumnChildAge},
			{Source: "behandling", Column: ColumnTreatment},
			{Source: "spoergsmaal_barn_tabel", Group: []Field{
				{Source: "spg_barn_1", Column: "Behandlingen hjalp mig"},
				{Source: "spg_barn_2", Column: "Vi har det bedre i familien nu, end før behandlingen begyndte"},
				{Source: "spg_barn_3", Column: "Hvis en ven havde brug for denne form for hjælp, ville jeg anbefale ham/hende at komme på klinikken"},
				{Source: "spg_barn_4", Column: "Behandlerne forstod det vigtigste af mine bekymringer og problemer"},
				{Source: "spg_barn_5", Column: "Jeg havde tillid til behandleren"},
				{Source: "spg_barn_6", Column: "Behandlingen medførte, at jeg fik det dårligere"},
				{Source: "spg_barn_7", Column: "Efter behandlingen har jeg fået mere lyst til at være sammen med mine venner"},
			}},
			{Source: "her_er_plads_til_at_du_kan_skrive_hvad_du_taenker_eller_foeler_o", Column: ColumnYouthFreeText},
		},
		Inverted: map[string]bool{
			"spg_barn_6": true,
		},
	}
}

// Parent returns the mapping definition for forms a parent or foster parent
// filled out on behalf of the child.
func Parent() *Definition {
	return &Definition{
		Role: RoleParent,
		Entries: []Entry{
			{Source: "serial", Column: ColumnSerial},
			{Source: "created", Column: ColumnCreated},
			{Source: "completed", Column: ColumnCompleted},
			{Source: "email", Column: ColumnEmail},
			{Source: "az_ident", Column: ColumnAZIdent},
			{Source: "hvem_udfylder_spoergeskemaet", Column: ColumnRole},
			{Source: "navn_manuelt", Column: ColumnParentName},
			{Source: "cpr_nummer_manuelt", Column: ColumnParentCPR},
			{Source: "barnets_navn_manuelt", Column: ColumnChildName},
			{Source: "cpr_nummer_barnet_manuelt", Column: ColumnChildCPR},
			{Source: "beregnet_alder", Column: ColumnChildAge},
			{Source: "behandling", Column: ColumnTreatment},
			{Source: "spoergsmaal_foraelder_tabel", Group: []Field{
				{Source: "spg_foraelder_1", Column: "Behandlingen hjalp mit barn"},
				{Source: "spg_foraelder_2", Column: "Behandlingen hjalp mig"},
				{Source: "spg_foraelder_3", Column: "Hvis en ven havde brug for denne form for hjælp, ville jeg anbefale vedkommende at komme på klinikken"},
				{Source: "spg_foraelder_4", Column: "Jeg følte mig passende informeret om meningen, formålet og forløbet af behandlingen"},
				{Source: "spg_foraelder_5", Column: "Vi har det bedre i familien nu, end før behandlingen begyndte"},
				{Source: "spg_foraelder_6", Column: "Under forløbet af behandlingen blev jeg i stand til at forandre min adfærd over for mit barn på en positiv måde"},
				{Source: "spg_foraelder_7", Column: "Under forløbet af behandlingen opnåede jeg en bedre forståelse af mit barns psykiske tilstand"},
				{Source: "spg_foraelder_8", Column: "Jeg havde tillid til vores behandlere"},
				{Source: "spg_foraelder_9", Column: "Behandlingen medførte, at mit barn fik det dårligere"},
				{Source: "spg_foraelder_10", Column: "Behandlingen medførte, at jeg fik det dårligere"},
			}},
			{Source: "hvad_var_rigtig_godt_ved_forloebet", Column: ColumnParentGood},
			{Source: "var_der_noget_du_ikke_syntes_om_eller_noget_der_kan_forbedres", Column: ColumnParentImprove},
			{Source: "er_der_andet_du_oensker_at_fortaelle_os_om_det_forloeb_du_har_haft", Column: ColumnParentOther},
		},
		Inverted: map[string]bool{
			"spg_foraelder_9":  true,
			"spg_foraelder_10": true,
		},
	}
}
