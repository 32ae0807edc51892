package award

import (
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	tribuneEffectiveDate   = "20070301"
	tribuneExclusionCutoff = "20081001"
	tribuneRequired        = 50
	// Centurion threshold that gates Tribune eligibility.
	tribunePrerequisite = 100
)

var tribuneLadder = ladderFrom(250,
	Rung{50, "Tribune"},
	Rung{100, "Tribune x2"},
	Rung{150, "Tribune x3"},
	Rung{200, "Tribune x4"},
	Rung{250, "Tribune x5"},
	Rung{300, "Tribune x6"},
	Rung{350, "Tribune x7"},
	Rung{400, "Tribune x8"},
	Rung{450, "Tribune x9"},
	Rung{500, "Tribune x10"},
	Rung{750, "Tribune x15"},
	Rung{1000, "Tribune x20"},
	Rung{1250, "Tribune x25"},
	Rung{1500, "Tribune x30"},
)

// Tribune counts unique members who held Centurion or better at QSO time,
// validated against the official Tribune/Senator rolls. Its prerequisite is
// Centurion (100 unique members over the full, unfiltered log).
type Tribune struct {
	roster Roster
	roll   Roll
	op     Operator
}

func NewTribune(roster Roster, roll Roll, op Operator) *Tribune {
	return &Tribune{roster: roster, roll: roll, op: op}
}

func (a *Tribune) Name() string      { return "Tribune" }
func (a *Tribune) ProgramID() string { return "SKCC_TRIBUNE" }

func (a *Tribune) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < tribuneEffectiveDate {
		return false
	}
	if excludedCall(c, tribuneExclusionCutoff) {
		return false
	}
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	if a.op.JoinDate != "" && date < a.op.JoinDate {
		return false
	}
	// QSO must fall on or after the user's own Centurion award date.
	if a.op.CenturionDate != "" && date < a.op.CenturionDate {
		return false
	}
	base := skcc.ExtractBaseNumber(c.SKCCNumber)
	return a.roll.TribuneOrSenatorOnDate(base, date)
}

// centurionPrereqCount re-scans the full contact set the way the Centurion
// tally is seeded: CW mode plus a parsable number, no further filtering.
// Key type is deliberately not checked here; only the tally itself gates
// on it.
func centurionPrereqCount(contacts []model.Contact) int {
	seen := make(map[string]bool)
	for _, c := range contacts {
		if !strings.EqualFold(strings.TrimSpace(c.Mode), "CW") {
			continue
		}
		if base := skcc.ExtractBaseNumber(c.SKCCNumber); base != "" {
			seen[base] = true
		}
	}
	return len(seen)
}

func (a *Tribune) Progress(contacts []model.Contact) model.Progress {
	prereq := centurionPrereqCount(contacts) >= tribunePrerequisite

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
		Required:        tribuneRequired,
		Achieved:        prereq && current >= tribuneRequired,
		ProgressPct:     pct(current, tribuneRequired),
		Endorsement:     tribuneLadder.Endorsement(current),
		NextThreshold:   tribuneLadder.Next(current),
		PrerequisiteMet: prereq,
		Contacts:        contributing,
	}
}
