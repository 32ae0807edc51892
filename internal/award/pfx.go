package award

import (
	"strconv"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	pfxEffectiveDate = "20130101"
	pfxRequired      = 500000
)

var pfxLadder = ladderFrom(2500000,
	Rung{500000, "PFX"},
	Rung{1000000, "PFX x2"},
	Rung{1500000, "PFX x3"},
	Rung{2000000, "PFX x4"},
	Rung{2500000, "PFX x5"},
	Rung{3000000, "PFX x6"},
	Rung{3500000, "PFX x7"},
	Rung{4000000, "PFX x8"},
	Rung{4500000, "PFX x9"},
	Rung{5000000, "PFX x10"},
	Rung{7500000, "PFX x15"},
	Rung{10000000, "PFX x20"},
)

// PFX sums, per unique callsign prefix, the highest member number worked
// with that prefix. A resubmitted (callsign, number) pair is ignored
// entirely so a duplicate QSO can never inflate the total.
type PFX struct {
	op Operator
}

func NewPFX(op Operator) *PFX {
	return &PFX{op: op}
}

func (a *PFX) Name() string      { return "PFX" }
func (a *PFX) ProgramID() string { return "SKCC_PFX" }

func (a *PFX) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < pfxEffectiveDate {
		return false
	}
	if excludedCall(c, "") {
		return false
	}
	return skcc.ExtractPrefix(c.Callsign) != ""
}

// PFXDetail reports the winning contact per prefix.
type PFXDetail struct {
	UniquePrefixes int              `json:"unique_prefixes"`
	BestByPrefix   map[string]int64 `json:"best_by_prefix"`
}

func (a *PFX) Progress(contacts []model.Contact) model.Progress {
	type pair struct{ call, base string }
	seen := make(map[pair]bool)
	best := make(map[string]int64)
	bestContact := make(map[string]model.Contact)

	for _, c := range contacts {
		if !a.Validate(c) {
			continue
		}
		call := skcc.NormalizeCallsign(c.Callsign)
		base := skcc.ExtractBaseNumber(c.SKCCNumber)
		if seen[pair{call, base}] {
			continue
		}
		seen[pair{call, base}] = true

		value, err := strconv.ParseInt(base, 10, 64)
		if err != nil {
			continue
		}
		prefix := skcc.ExtractPrefix(c.Callsign)
		if value > best[prefix] {
			best[prefix] = value
			bestContact[prefix] = c
		}
	}

	var total int64
	var contributing []model.Contact
	for prefix, value := range best {
		total += value
		contributing = append(contributing, bestContact[prefix])
	}

	current := float64(total)
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        pfxRequired,
		Achieved:        current >= pfxRequired,
		ProgressPct:     pct(current, pfxRequired),
		Endorsement:     pfxLadder.Endorsement(current),
		NextThreshold:   pfxLadder.Next(current),
		PrerequisiteMet: true,
		Detail: PFXDetail{
			UniquePrefixes: len(best),
			BestByPrefix:   best,
		},
		Contacts: contributing,
	}
}
