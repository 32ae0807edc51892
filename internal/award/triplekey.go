package award

import (
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	tripleKeyEffectiveDate = "20181110"
	// Per-bucket requirement; the award needs 100 with each of the three keys.
	tripleKeyRequired = 100
)

// The ladder runs on the total unique members across all three buckets.
var tripleKeyLadder = ladderFrom(300,
	Rung{300, "Triple Key"},
	Rung{600, "Triple Key x2"},
	Rung{900, "Triple Key x3"},
	Rung{1500, "Triple Key x5"},
	Rung{3000, "Triple Key x10"},
)

// TripleKey assigns each member to the key-type bucket of the
// chronologically first qualifying contact with them; later contacts with
// the same member are ignored even if they use a different key. Achieved
// when every bucket reaches 100; the displayed count is the minimum bucket.
type TripleKey struct {
	roster Roster
	op     Operator
}

func NewTripleKey(roster Roster, op Operator) *TripleKey {
	return &TripleKey{roster: roster, op: op}
}

func (a *TripleKey) Name() string      { return "Triple Key" }
func (a *TripleKey) ProgramID() string { return "SKCC_TRIPLE_KEY" }

func (a *TripleKey) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < tripleKeyEffectiveDate {
		return false
	}
	// The shared gate tolerates a missing key type; Triple Key cannot.
	kt := strings.ToUpper(strings.TrimSpace(c.KeyType))
	if !model.MechanicalKeyTypes[kt] {
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

// TripleKeyDetail reports the per-bucket tallies.
type TripleKeyDetail struct {
	Straight   int `json:"straight"`
	Bug        int `json:"bug"`
	Sideswiper int `json:"sideswiper"`
	Total      int `json:"total"`
	Duplicates int `json:"duplicates"`
}

func (a *TripleKey) Progress(contacts []model.Contact) model.Progress {
	buckets := map[string]int{
		model.KeyStraight:   0,
		model.KeyBug:        0,
		model.KeySideswiper: 0,
	}
	counted := make(map[string]bool)
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
		buckets[strings.ToUpper(strings.TrimSpace(c.KeyType))]++
		contributing = append(contributing, c)
	}

	minBucket := buckets[model.KeyStraight]
	achieved := true
	for _, n := range buckets {
		if n < minBucket {
			minBucket = n
		}
		if n < tripleKeyRequired {
			achieved = false
		}
	}
	total := len(counted)

	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         float64(minBucket),
		Required:        tripleKeyRequired,
		Achieved:        achieved,
		ProgressPct:     pct(float64(minBucket), tripleKeyRequired),
		Endorsement:     tripleKeyLadder.Endorsement(float64(total)),
		NextThreshold:   tripleKeyLadder.Next(float64(total)),
		PrerequisiteMet: true,
		Detail: TripleKeyDetail{
			Straight:   buckets[model.KeyStraight],
			Bug:        buckets[model.KeyBug],
			Sideswiper: buckets[model.KeySideswiper],
			Total:      total,
			Duplicates: duplicates,
		},
		Contacts: contributing,
	}
}
