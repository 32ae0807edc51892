// Package award implements the SKCC award eligibility and progress engine.
// Each award is a pure function of an immutable contact slice, a roster
// snapshot, and the operator's own dates; no award mutates its inputs.
package award

import (
	"sort"
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

// Roster is the read-only membership query surface awards depend on. It is
// satisfied by *roster.Index; tests supply fakes.
type Roster interface {
	Lookup(callsign string) *model.Member
	WasMemberOnDate(callsign, date string) bool
}

// Roll is the query surface over the official Centurion/Tribune/Senator
// award rosters. When a roll failed to load, TribuneOrSenatorOnDate accepts
// any member (availability over strictness) and Available reports false.
type Roll interface {
	TribuneOrSenatorOnDate(baseNumber, date string) bool
	Available() bool
}

// Operator holds the user's own identity and achievement dates. Empty dates
// disable the corresponding checks.
type Operator struct {
	Callsign      string
	SKCCNumber    string
	JoinDate      string // YYYYMMDD
	CenturionDate string // YYYYMMDD
	TribuneX8Date string // YYYYMMDD override for the Senator crossing scan
}

// Award is the fixed per-award contract. Validate and Progress are pure over
// their inputs; callers never recompute eligibility themselves.
type Award interface {
	Name() string
	ProgramID() string
	Validate(c model.Contact) bool
	Progress(contacts []model.Contact) model.Progress
}

// PassesCommonRules is the shared gate every award applies before its own
// rules: CW mode, a parsable SKCC number, and no explicitly non-mechanical
// key type. A missing key type passes here; awards that need one recorded
// (Triple Key) tighten this themselves.
func PassesCommonRules(c model.Contact) bool {
	if !strings.EqualFold(strings.TrimSpace(c.Mode), "CW") {
		return false
	}
	if skcc.ExtractBaseNumber(c.SKCCNumber) == "" {
		return false
	}
	if kt := strings.ToUpper(strings.TrimSpace(c.KeyType)); kt != "" && !model.MechanicalKeyTypes[kt] {
		return false
	}
	return true
}

// qsoDate returns the contact date normalized to YYYYMMDD.
func qsoDate(c model.Contact) string {
	return strings.ReplaceAll(strings.TrimSpace(c.Date), "-", "")
}

// normalizeBand uppercases a band string and appends the meter suffix when
// the log recorded a bare number ("20" -> "20M").
func normalizeBand(band string) string {
	b := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(band), " ", ""))
	if b == "" {
		return ""
	}
	if b[len(b)-1] != 'M' {
		allDigits := true
		for i := 0; i < len(b); i++ {
			if b[i] < '0' || b[i] > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return b + "M"
		}
	}
	return b
}

// sortChronological returns a copy of contacts ordered ascending by
// (date, time). First-contact-wins awards depend on this so their result is
// independent of input ordering.
func sortChronological(contacts []model.Contact) []model.Contact {
	sorted := make([]model.Contact, len(contacts))
	copy(sorted, contacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := qsoDate(sorted[i]), qsoDate(sorted[j])
		if di != dj {
			return di < dj
		}
		return sorted[i].TimeOn < sorted[j].TimeOn
	})
	return sorted
}

// specialEventCalls are club and special-event calls excluded from awards
// after each award's own cutoff date.
var specialEventCalls = map[string]bool{
	"K9SKC": true,
	"K3Y":   true,
}

// excludedCall reports whether the contact's base call is on the exclusion
// list and the QSO falls inside the exclusion window. An empty cutoff means
// the exclusion applies to all dates.
func excludedCall(c model.Contact, cutoff string) bool {
	if !specialEventCalls[skcc.BaseCall(c.Callsign)] {
		return false
	}
	if cutoff == "" {
		return true
	}
	date := qsoDate(c)
	return date != "" && date >= cutoff
}

// pct maps current/required onto a percentage capped at 100.
func pct(current, required float64) float64 {
	if required <= 0 {
		return 0
	}
	p := current / required * 100
	if p > 100 {
		return 100
	}
	return p
}
