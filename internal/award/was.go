package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
)

const (
	wasEffectiveDate = "20111009"
	wasRequired      = 50
)

// WAS is Worked All States: one qualifying contact in each of the 50 US
// states, with the state resolved through the location fallback chain.
type WAS struct {
	roster Roster
	op     Operator
}

func NewWAS(roster Roster, op Operator) *WAS {
	return &WAS{roster: roster, op: op}
}

func (a *WAS) Name() string      { return "WAS" }
func (a *WAS) ProgramID() string { return "SKCC_WAS" }

func (a *WAS) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < wasEffectiveDate {
		return false
	}
	if stateFromContact(c) == "" {
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

// GeoDetail lists the distinct location codes worked.
type GeoDetail struct {
	Worked  []string `json:"worked"`
	Missing int      `json:"missing"`
}

func (a *WAS) Progress(contacts []model.Contact) model.Progress {
	return stateProgress(a, a.Name(), a.ProgramID(), contacts)
}

// stateProgress is shared by WAS and WAS-T: the first qualifying contact per
// state contributes.
func stateProgress(aw Award, name, programID string, contacts []model.Contact) model.Progress {
	states := make(map[string]bool)
	var contributing []model.Contact
	for _, c := range sortChronological(contacts) {
		if !aw.Validate(c) {
			continue
		}
		s := stateFromContact(c)
		if states[s] {
			continue
		}
		states[s] = true
		contributing = append(contributing, c)
	}

	current := float64(len(states))
	endorsement := NotYet
	if len(states) >= wasRequired {
		endorsement = name
	}
	return model.Progress{
		Award:           name,
		ProgramID:       programID,
		Current:         current,
		Required:        wasRequired,
		Achieved:        len(states) >= wasRequired,
		ProgressPct:     pct(current, wasRequired),
		Endorsement:     endorsement,
		NextThreshold:   wasRequired,
		PrerequisiteMet: true,
		Detail: GeoDetail{
			Worked:  sortedKeys(states),
			Missing: wasRequired - len(states),
		},
		Contacts: contributing,
	}
}
