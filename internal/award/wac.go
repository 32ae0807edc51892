package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
)

const (
	wacEffectiveDate = "20111009"
	wacRequired      = 6
)

// WAC is Worked All Continents: one qualifying contact on each of the six
// continents, resolved through the continent fallback chain.
type WAC struct {
	roster Roster
	op     Operator
}

func NewWAC(roster Roster, op Operator) *WAC {
	return &WAC{roster: roster, op: op}
}

func (a *WAC) Name() string      { return "WAC" }
func (a *WAC) ProgramID() string { return "SKCC_WAC" }

func (a *WAC) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < wacEffectiveDate {
		return false
	}
	if continentFromContact(c) == "" {
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

func (a *WAC) Progress(contacts []model.Contact) model.Progress {
	worked := make(map[string]bool)
	var contributing []model.Contact
	for _, c := range sortChronological(contacts) {
		if !a.Validate(c) {
			continue
		}
		cont := continentFromContact(c)
		if worked[cont] {
			continue
		}
		worked[cont] = true
		contributing = append(contributing, c)
	}

	current := float64(len(worked))
	endorsement := NotYet
	if len(worked) >= wacRequired {
		endorsement = "WAC"
	}
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        wacRequired,
		Achieved:        len(worked) >= wacRequired,
		ProgressPct:     pct(current, wacRequired),
		Endorsement:     endorsement,
		NextThreshold:   wacRequired,
		PrerequisiteMet: true,
		Detail: GeoDetail{
			Worked:  sortedKeys(worked),
			Missing: wacRequired - len(worked),
		},
		Contacts: contributing,
	}
}
