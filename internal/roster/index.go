// Package roster maintains point-in-time snapshots of the SKCC membership
// roster and the official award rolls. Snapshots are immutable: a refresh
// builds a whole new index and swaps the pointer, so readers never observe a
// partially-populated state and need no locks.
package roster

import (
	"time"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

// Callsign variants tried when the roster records a member's primary call
// but the log carries a portable form.
var portableSuffixes = []string{"/P", "/QRP", "/M", "/MM"}

// Index is an immutable snapshot of the membership roster with callsign and
// base-number lookup.
type Index struct {
	byCall   map[string]*model.Member
	byNumber map[string]*model.Member
	builtAt  time.Time
	count    int
}

// NewIndex builds an index from roster rows. Each member is reachable under
// the verbatim roster call and its normalized form.
func NewIndex(members []model.Member) *Index {
	ix := &Index{
		byCall:   make(map[string]*model.Member, len(members)*2),
		byNumber: make(map[string]*model.Member, len(members)),
		builtAt:  time.Now().UTC(),
		count:    len(members),
	}
	for i := range members {
		m := &members[i]
		call := skcc.BaseCall(m.Callsign)
		if call != "" {
			ix.byCall[call] = m
		}
		if norm := skcc.NormalizeCallsign(m.Callsign); norm != "" {
			if _, ok := ix.byCall[norm]; !ok {
				ix.byCall[norm] = m
			}
		}
		if m.BaseNumber != "" {
			ix.byNumber[m.BaseNumber] = m
		}
	}
	return ix
}

// Lookup resolves a callsign to a member record, trying the call verbatim,
// then its normalized longest-segment form, then the normalized form with
// common portable suffixes appended. Unknown calls return nil: absence is a
// normal eligibility outcome, not a fault.
func (ix *Index) Lookup(callsign string) *model.Member {
	call := skcc.BaseCall(callsign)
	if call == "" {
		return nil
	}
	if m, ok := ix.byCall[call]; ok {
		return m
	}
	norm := skcc.NormalizeCallsign(callsign)
	if m, ok := ix.byCall[norm]; ok {
		return m
	}
	for _, suffix := range portableSuffixes {
		if m, ok := ix.byCall[norm+suffix]; ok {
			return m
		}
	}
	return nil
}

// LookupByNumber resolves a base membership number to a member record.
func (ix *Index) LookupByNumber(baseNumber string) *model.Member {
	if m, ok := ix.byNumber[baseNumber]; ok {
		return m
	}
	return nil
}

// WasMemberOnDate reports whether the identity (callsign, or base number
// when the string is all digits) was a member on the given YYYYMMDD date.
// Join dates are zero-padded strings, so string comparison equals calendar
// comparison. A member with no recorded join date passes.
func (ix *Index) WasMemberOnDate(identity, date string) bool {
	m := ix.Lookup(identity)
	if m == nil {
		if base := skcc.ExtractBaseNumber(identity); base != "" && base == identity {
			m = ix.LookupByNumber(base)
		}
	}
	if m == nil {
		return false
	}
	if m.JoinDate == "" || date == "" {
		return true
	}
	return m.JoinDate <= date
}

// Len reports how many members the snapshot holds.
func (ix *Index) Len() int { return ix.count }

// BuiltAt reports when the snapshot was constructed.
func (ix *Index) BuiltAt() time.Time { return ix.builtAt }
