package roster

import (
	"log/slog"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

// Award roll types matching the official SKCC award pages.
const (
	RollCenturion = "centurion"
	RollTribune   = "tribune"
	RollSenator   = "senator"
)

// Roll is an immutable snapshot of the official award rosters: base number
// to award date per roll type. When a roll could not be loaded the
// Tribune/Senator check degrades to permissive — any valid member is
// accepted — which is a deliberate availability-over-strictness policy, not
// an error. The degradation is logged once at construction.
type Roll struct {
	dates  map[string]map[string]string // roll type -> base number -> YYYYMMDD
	loaded map[string]bool
}

// NewRoll builds a roll snapshot from award roster rows. rollTypes lists the
// rolls that actually loaded; entries of unlisted types are ignored.
func NewRoll(entries []model.AwardRosterEntry, loaded []string, logger *slog.Logger) *Roll {
	r := &Roll{
		dates:  make(map[string]map[string]string),
		loaded: make(map[string]bool, len(loaded)),
	}
	for _, t := range loaded {
		r.loaded[t] = true
		r.dates[t] = make(map[string]string)
	}
	for _, e := range entries {
		if !r.loaded[e.AwardType] {
			continue
		}
		r.dates[e.AwardType][e.BaseNumber] = e.AwardDate
	}
	if !r.Available() {
		logger.Warn("tribune/senator rolls unavailable, status checks degrade to permissive")
	}
	return r
}

// EmptyRoll returns a roll with nothing loaded; every status check passes.
func EmptyRoll(logger *slog.Logger) *Roll {
	return NewRoll(nil, nil, logger)
}

// Available reports whether the Tribune/Senator rolls loaded.
func (r *Roll) Available() bool {
	return r.loaded[RollTribune] || r.loaded[RollSenator]
}

// TribuneOrSenatorOnDate reports whether the member held Tribune or Senator
// status on the given date. With no roll loaded it accepts any member.
func (r *Roll) TribuneOrSenatorOnDate(baseNumber, date string) bool {
	if !r.Available() {
		return true
	}
	return r.holderOnDate(RollTribune, baseNumber, date) ||
		r.holderOnDate(RollSenator, baseNumber, date)
}

// AwardDate returns the date the member earned the given roll's award, or ""
// when absent. The number may carry a status suffix.
func (r *Roll) AwardDate(rollType, number string) string {
	base := skcc.ExtractBaseNumber(number)
	if base == "" {
		return ""
	}
	return r.dates[rollType][base]
}

func (r *Roll) holderOnDate(rollType, number, date string) bool {
	awarded := r.AwardDate(rollType, number)
	if awarded == "" {
		return false
	}
	if date == "" {
		return true
	}
	return awarded <= date
}

// Loaded reports whether the given roll type was loaded in this snapshot.
func (r *Roll) Loaded(rollType string) bool {
	return r.loaded[rollType]
}

// Size returns the number of entries in the given roll.
func (r *Roll) Size(rollType string) int {
	return len(r.dates[rollType])
}
