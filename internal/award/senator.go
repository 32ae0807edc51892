package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	senatorEffectiveDate = "20130801"
	senatorRequired      = 200
	// Tribune x8: the unique-member count that opens the Senator window.
	senatorPrerequisite = 400
)

var senatorLadder = ladderFrom(200,
	Rung{200, "Senator"},
	Rung{400, "Senator x2"},
	Rung{600, "Senator x3"},
	Rung{800, "Senator x4"},
	Rung{1000, "Senator x5"},
	Rung{1200, "Senator x6"},
	Rung{1400, "Senator x7"},
	Rung{1600, "Senator x8"},
	Rung{1800, "Senator x9"},
	Rung{2000, "Senator x10"},
)

// Senator counts unique Tribune/Senator members contacted after the operator
// reached Tribune x8. The crossing date is re-derived from the log on every
// evaluation by walking Tribune-qualifying contacts chronologically; a
// configured override date takes precedence when set.
type Senator struct {
	roster  Roster
	roll    Roll
	op      Operator
	tribune *Tribune
}

func NewSenator(roster Roster, roll Roll, op Operator) *Senator {
	return &Senator{
		roster:  roster,
		roll:    roll,
		op:      op,
		tribune: NewTribune(roster, roll, op),
	}
}

func (a *Senator) Name() string      { return "Senator" }
func (a *Senator) ProgramID() string { return "SKCC_SENATOR" }

func (a *Senator) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < senatorEffectiveDate {
		return false
	}
	// Club calls never qualify for Senator, regardless of date.
	if excludedCall(c, "") {
		return false
	}
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	if a.op.JoinDate != "" && date < a.op.JoinDate {
		return false
	}
	if a.op.CenturionDate != "" && date < a.op.CenturionDate {
		return false
	}
	base := skcc.ExtractBaseNumber(c.SKCCNumber)
	return a.roll.TribuneOrSenatorOnDate(base, date)
}

// crossingDate walks the log chronologically, accumulating the set of unique
// Tribune-qualifying members, and returns the date of the contact that first
// brought the count to 400. Returns "" while the threshold is unreached.
func (a *Senator) crossingDate(contacts []model.Contact) string {
	seen := make(map[string]bool)
	for _, c := range sortChronological(contacts) {
		if !a.tribune.Validate(c) {
			continue
		}
		base := skcc.ExtractBaseNumber(c.SKCCNumber)
		if base == "" || seen[base] {
			continue
		}
		seen[base] = true
		if len(seen) >= senatorPrerequisite {
			return qsoDate(c)
		}
	}
	return ""
}

// SenatorDetail reports the prerequisite state alongside the tally.
type SenatorDetail struct {
	TribuneX8Date   string `json:"tribune_x8_date"`
	TribuneUnique   int    `json:"tribune_unique"`
	CrossingDerived bool   `json:"crossing_derived"`
}

func (a *Senator) Progress(contacts []model.Contact) model.Progress {
	crossing := a.op.TribuneX8Date
	derived := false
	if crossing == "" {
		crossing = a.crossingDate(contacts)
		derived = crossing != ""
	}

	tribuneUnique := make(map[string]bool)
	for _, c := range contacts {
		if a.tribune.Validate(c) {
			if base := skcc.ExtractBaseNumber(c.SKCCNumber); base != "" {
				tribuneUnique[base] = true
			}
		}
	}

	seen := make(map[string]bool)
	var contributing []model.Contact
	if crossing != "" {
		for _, c := range sortChronological(contacts) {
			if !a.Validate(c) {
				continue
			}
			if date := qsoDate(c); date < crossing {
				continue
			}
			base := skcc.ExtractBaseNumber(c.SKCCNumber)
			if base == "" || seen[base] {
				continue
			}
			seen[base] = true
			contributing = append(contributing, c)
		}
	}

	current := float64(len(seen))
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        senatorRequired,
		Achieved:        crossing != "" && current >= senatorRequired,
		ProgressPct:     pct(current, senatorRequired),
		Endorsement:     senatorLadder.Endorsement(current),
		NextThreshold:   senatorLadder.Next(current),
		PrerequisiteMet: crossing != "",
		Detail: SenatorDetail{
			TribuneX8Date:   crossing,
			TribuneUnique:   len(tribuneUnique),
			CrossingDerived: derived,
		},
		Contacts: contributing,
	}
}
