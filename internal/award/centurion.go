package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

// Club and special-event calls stop counting toward Centurion on this date.
const centurionExclusionCutoff = "20091201"

const centurionRequired = 100

var centurionLadder = ladderFrom(500,
	Rung{100, "Centurion"},
	Rung{200, "Centurion x2"},
	Rung{300, "Centurion x3"},
	Rung{400, "Centurion x4"},
	Rung{500, "Centurion x5"},
	Rung{600, "Centurion x6"},
	Rung{700, "Centurion x7"},
	Rung{800, "Centurion x8"},
	Rung{900, "Centurion x9"},
	Rung{1000, "Centurion x10"},
	Rung{1500, "Centurion x15"},
	Rung{2000, "Centurion x20"},
	Rung{2500, "Centurion x25"},
	Rung{3000, "Centurion x30"},
	Rung{3500, "Centurion x35"},
	Rung{4000, "Centurion x40"},
)

// Centurion counts unique SKCC members contacted. 100 distinct base numbers
// earn the award; every other award in the family chains off it.
type Centurion struct {
	roster Roster
	op     Operator
}

func NewCenturion(roster Roster, op Operator) *Centurion {
	return &Centurion{roster: roster, op: op}
}

func (a *Centurion) Name() string      { return "Centurion" }
func (a *Centurion) ProgramID() string { return "SKCC_CENTURION" }

func (a *Centurion) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	if excludedCall(c, centurionExclusionCutoff) {
		return false
	}
	date := qsoDate(c)
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	// Both parties must be members at QSO time; the remote side is covered
	// by the roster check above.
	if a.op.JoinDate != "" && date != "" && date < a.op.JoinDate {
		return false
	}
	return true
}

func (a *Centurion) Progress(contacts []model.Contact) model.Progress {
	seen := make(map[string]bool)
	var contributing []model.Contact
	for _, c := range sortChronological(contacts) {
		if !a.Validate(c) {
			continue
		}
		base := skcc.ExtractBaseNumber(c.SKCCNumber)
		if base == "" || seen[base] {
			continue
		}
		seen[base] = true
		contributing = append(contributing, c)
	}

	current := float64(len(seen))
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        centurionRequired,
		Achieved:        current >= centurionRequired,
		ProgressPct:     pct(current, centurionRequired),
		Endorsement:     centurionLadder.Endorsement(current),
		NextThreshold:   centurionLadder.Next(current),
		PrerequisiteMet: true,
		Contacts:        contributing,
	}
}
