package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	marathonEffectiveDate = "20080101"
	marathonMinMinutes    = 60
	// 100 conversations of at least an hour each.
	marathonRequired = 6000
)

var marathonLadder = ladderFrom(6000,
	Rung{6000, "Marathon"},
)

// Marathon accumulates minutes from hour-plus conversations, capped at one
// qualifying contact per member: the chronologically first wins, later
// contacts with the same member are ignored.
type Marathon struct {
	roster Roster
	op     Operator
}

func NewMarathon(roster Roster, op Operator) *Marathon {
	return &Marathon{roster: roster, op: op}
}

func (a *Marathon) Name() string      { return "Marathon" }
func (a *Marathon) ProgramID() string { return "SKCC_MARATHON" }

func (a *Marathon) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < marathonEffectiveDate {
		return false
	}
	if c.DurationMinutes == nil || *c.DurationMinutes < marathonMinMinutes {
		return false
	}
	// Club calls never count: the award demands personal calls on both ends.
	if excludedCall(c, "") {
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

// MarathonDetail summarizes the per-member selection.
type MarathonDetail struct {
	UniqueMembers int `json:"unique_members"`
	Duplicates    int `json:"duplicates"`
}

func (a *Marathon) Progress(contacts []model.Contact) model.Progress {
	counted := make(map[string]bool)
	totalMinutes := 0
	duplicates := 0
	var contributing []model.Contact
	for _, c := range sortChronological(contacts) {
		if !a.Validate(c) {
			continue
		}
		base := skcc.ExtractBaseNumber(c.SKCCNumber)
		if counted[base] {
			duplicates++
			continue
		}
		counted[base] = true
		totalMinutes += *c.DurationMinutes
		contributing = append(contributing, c)
	}

	current := float64(totalMinutes)
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        marathonRequired,
		Achieved:        current >= marathonRequired,
		ProgressPct:     pct(current, marathonRequired),
		Endorsement:     marathonLadder.Endorsement(current),
		NextThreshold:   marathonLadder.Next(current),
		PrerequisiteMet: true,
		Detail: MarathonDetail{
			UniqueMembers: len(counted),
			Duplicates:    duplicates,
		},
		Contacts: contributing,
	}
}
