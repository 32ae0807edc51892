package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const wastEffectiveDate = "20160201"

// WAST is WAS-Tribune: Worked All States where every remote member held
// Tribune or Senator status, judged by the status suffix of the exchanged
// number (falling back to the roster's current suffix).
type WAST struct {
	roster Roster
	op     Operator
}

func NewWAST(roster Roster, op Operator) *WAST {
	return &WAST{roster: roster, op: op}
}

func (a *WAST) Name() string      { return "WAS-T" }
func (a *WAST) ProgramID() string { return "SKCC_WAS_T" }

func (a *WAST) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < wastEffectiveDate {
		return false
	}
	if stateFromContact(c) == "" {
		return false
	}
	if !a.remoteTribuneOrSenator(c) {
		return false
	}
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	if a.op.JoinDate != "" && date < a.op.JoinDate {
		return false
	}
	return true
}

func (a *WAST) remoteTribuneOrSenator(c model.Contact) bool {
	if skcc.IsTribuneOrSenator(c.SKCCNumber) {
		return true
	}
	// The log may carry a bare number even though the member holds the
	// status; the roster's current suffix settles it.
	if m := a.roster.Lookup(c.Callsign); m != nil {
		return m.Suffix == "T" || m.Suffix == "S"
	}
	return false
}

func (a *WAST) Progress(contacts []model.Contact) model.Progress {
	return stateProgress(a, a.Name(), a.ProgramID(), contacts)
}
