package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	ragChewEffectiveDate = "20130701"
	ragChewMinMinutes    = 30
	ragChewRequired      = 300
)

var ragChewLadder = ladderFrom(1500,
	Rung{300, "Rag Chew"},
	Rung{600, "Rag Chew x2"},
	Rung{900, "Rag Chew x3"},
	Rung{1200, "Rag Chew x4"},
	Rung{1500, "Rag Chew x5"},
	Rung{1800, "Rag Chew x6"},
	Rung{2100, "Rag Chew x7"},
	Rung{2400, "Rag Chew x8"},
	Rung{2700, "Rag Chew x9"},
	Rung{3000, "Rag Chew x10"},
	Rung{4500, "Rag Chew x15"},
	Rung{6000, "Rag Chew x20"},
	Rung{7500, "Rag Chew x25"},
	Rung{9000, "Rag Chew x30"},
)

// RagChew accumulates minutes of extended conversations, 30 minutes minimum
// per QSO. Two qualifying contacts with the same member on the same calendar
// day count once; the same member on different days counts each time.
type RagChew struct {
	roster Roster
	op     Operator
}

func NewRagChew(roster Roster, op Operator) *RagChew {
	return &RagChew{roster: roster, op: op}
}

func (a *RagChew) Name() string      { return "Rag Chew" }
func (a *RagChew) ProgramID() string { return "SKCC_RAG_CHEW" }

func (a *RagChew) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < ragChewEffectiveDate {
		return false
	}
	if c.DurationMinutes == nil || *c.DurationMinutes < ragChewMinMinutes {
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

// RagChewDetail summarizes the qualifying conversations.
type RagChewDetail struct {
	QualifyingContacts int     `json:"qualifying_contacts"`
	AverageMinutes     float64 `json:"average_minutes"`
}

func (a *RagChew) Progress(contacts []model.Contact) model.Progress {
	// Same-day dedup: one conversation per member per calendar day.
	lastDay := make(map[string]string)
	totalMinutes := 0
	var contributing []model.Contact
	for _, c := range sortChronological(contacts) {
		if !a.Validate(c) {
			continue
		}
		base := skcc.ExtractBaseNumber(c.SKCCNumber)
		date := qsoDate(c)
		if lastDay[base] == date {
			continue
		}
		lastDay[base] = date
		totalMinutes += *c.DurationMinutes
		contributing = append(contributing, c)
	}

	avg := 0.0
	if len(contributing) > 0 {
		avg = float64(totalMinutes) / float64(len(contributing))
	}

	current := float64(totalMinutes)
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        ragChewRequired,
		Achieved:        current >= ragChewRequired,
		ProgressPct:     pct(current, ragChewRequired),
		Endorsement:     ragChewLadder.Endorsement(current),
		NextThreshold:   ragChewLadder.Next(current),
		PrerequisiteMet: true,
		Detail: RagChewDetail{
			QualifyingContacts: len(contributing),
			AverageMinutes:     avg,
		},
		Contacts: contributing,
	}
}
