package award

import (
	"testing"

	"github.com/garyPenhook/skcclog/internal/model"
)

// fifty state codes in a fixed order for fixtures.
var allStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

func stateQSO(call, date, number, state string) model.Contact {
	c := qso(call, date, number)
	c.State = state
	return c
}

func TestWASEffectiveDate(t *testing.T) {
	a := NewWAS(openRoster{}, Operator{})

	if a.Validate(stateQSO("W1AW", "20111008", "100", "CT")) {
		t.Error("contact before 20111009 should not validate")
	}
	if !a.Validate(stateQSO("W1AW", "20111009", "100", "CT")) {
		t.Error("contact on 20111009 should validate")
	}
}

func TestWASRequiresResolvableState(t *testing.T) {
	a := NewWAS(openRoster{}, Operator{})

	if a.Validate(qso("G4ABC", "20240101", "100")) {
		t.Error("contact with no resolvable state should not validate")
	}
	// The call-area heuristic fills in when the field is empty.
	if !a.Validate(qso("W4GNS", "20240101", "100")) {
		t.Error("US call should resolve a state via the call area")
	}
}

func TestWASProgress(t *testing.T) {
	a := NewWAS(openRoster{}, Operator{})

	var contacts []model.Contact
	for _, s := range allStates[:49] {
		contacts = append(contacts, stateQSO("W1AW", "20240101", "100", s))
	}
	// A second contact in an already-worked state adds nothing.
	contacts = append(contacts, stateQSO("K4ABC", "20240201", "200", "AL"))

	p := a.Progress(contacts)
	if p.Current != 49 {
		t.Errorf("states = %v, want 49", p.Current)
	}
	if p.Achieved {
		t.Error("49 states should not achieve WAS")
	}
	if p.Detail.(GeoDetail).Missing != 1 {
		t.Errorf("missing = %d, want 1", p.Detail.(GeoDetail).Missing)
	}

	contacts = append(contacts, stateQSO("W7XYZ", "20240301", "300", "WY"))
	p = a.Progress(contacts)
	if !p.Achieved {
		t.Error("50 states should achieve WAS")
	}
	if p.Endorsement != "WAS" {
		t.Errorf("endorsement = %q, want WAS", p.Endorsement)
	}
}

func TestWASTRemoteStatusRequired(t *testing.T) {
	roster := fakeRoster{members: map[string]model.Member{
		"W1AW":  {BaseNumber: "100", Callsign: "W1AW", Suffix: "T"},
		"K4ABC": {BaseNumber: "200", Callsign: "K4ABC"},
	}}
	a := NewWAST(roster, Operator{})

	// Suffix in the logged number qualifies directly.
	if !a.Validate(stateQSO("K4ABC", "20240101", "200T", "GA")) {
		t.Error("a logged T suffix should qualify")
	}
	// A bare number falls back to the roster's current suffix.
	if !a.Validate(stateQSO("W1AW", "20240101", "100", "CT")) {
		t.Error("roster suffix T should qualify a bare number")
	}
	if a.Validate(stateQSO("K4ABC", "20240101", "200", "GA")) {
		t.Error("plain member with bare number should not qualify")
	}
}

func TestWASTEffectiveDate(t *testing.T) {
	a := NewWAST(openRoster{}, Operator{})

	if a.Validate(stateQSO("W1AW", "20160131", "100T", "CT")) {
		t.Error("contact before 20160201 should not validate")
	}
	if !a.Validate(stateQSO("W1AW", "20160201", "100T", "CT")) {
		t.Error("contact on 20160201 should validate")
	}
}

func TestWACProgress(t *testing.T) {
	a := NewWAC(openRoster{}, Operator{})

	continentQSO := func(call, cont string) model.Contact {
		c := qso(call, "20240101", "100")
		c.Continent = cont
		return c
	}

	contacts := []model.Contact{
		continentQSO("W1AW", "NA"),
		continentQSO("PY2XX", "SA"),
		continentQSO("G4ABC", "EU"),
		continentQSO("JA1QQ", "AS"),
		continentQSO("ZS6FF", "AF"),
	}
	p := a.Progress(contacts)
	if p.Current != 5 || p.Achieved {
		t.Errorf("5 continents should not achieve WAC, got %v", p.Current)
	}

	contacts = append(contacts, continentQSO("VK2GG", "OC"))
	p = a.Progress(contacts)
	if !p.Achieved {
		t.Error("6 continents should achieve WAC")
	}
}
