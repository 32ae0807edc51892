package award

import (
	"testing"

	"github.com/garyPenhook/skcclog/internal/model"
)

func TestStateFromContactChain(t *testing.T) {
	tests := []struct {
		name string
		c    model.Contact
		want string
	}{
		{"explicit field", model.Contact{Callsign: "W6ABC", State: "ga"}, "GA"},
		{"field beats call area", model.Contact{Callsign: "W6ABC", State: "TX"}, "TX"},
		{"call area W4", model.Contact{Callsign: "W4GNS"}, "AL"},
		{"call area K0", model.Contact{Callsign: "K0XYZ"}, "CO"},
		{"call area N9", model.Contact{Callsign: "N9QQ"}, "IL"},
		{"non-US call no comment", model.Contact{Callsign: "G4ABC"}, ""},
		{"comment scan", model.Contact{Callsign: "G4ABC", Comment: "WY"}, "WY"},
		{"nothing", model.Contact{Callsign: "G4ABC", Comment: "nice chat"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stateFromContact(tt.c); got != tt.want {
				t.Errorf("stateFromContact = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContinentFromContactChain(t *testing.T) {
	tests := []struct {
		name string
		c    model.Contact
		want string
	}{
		{"explicit continent", model.Contact{Callsign: "W1AW", Continent: "eu"}, "EU"},
		{"country name", model.Contact{Callsign: "XX1XX", Country: "Japan"}, "AS"},
		{"US prefix", model.Contact{Callsign: "W1AW"}, "NA"},
		{"canary islands before spain", model.Contact{Callsign: "EA8ABC"}, "AF"},
		{"spain", model.Contact{Callsign: "EA4ABC"}, "EU"},
		{"oceania prefix", model.Contact{Callsign: "VK2DEF"}, "OC"},
		{"unknown", model.Contact{Callsign: "T99XYZ"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := continentFromContact(tt.c); got != tt.want {
				t.Errorf("continentFromContact = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanadianLocationChain(t *testing.T) {
	tests := []struct {
		name string
		c    model.Contact
		want string
	}{
		{"explicit province", model.Contact{Callsign: "W1AW", State: "on"}, "ON"},
		{"VE3 prefix", model.Contact{Callsign: "VE3XYZ"}, "ON"},
		{"VY1 yukon", model.Contact{Callsign: "VY1AB"}, "YT"},
		{"VO1 newfoundland", model.Contact{Callsign: "VO1CD"}, "NL"},
		{"comment scan", model.Contact{Callsign: "W1AW", Comment: "cottage in QC"}, "QC"},
		{"US state not canadian", model.Contact{Callsign: "W1AW", State: "GA"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canadianLocation(tt.c); got != tt.want {
				t.Errorf("canadianLocation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommentScanStableOnMultipleMatches(t *testing.T) {
	// "INDIANA" contains the codes IA, IN, and ND; the scan must resolve
	// to the same one on every call.
	state := model.Contact{Callsign: "G4ABC", Comment: "INDIANA"}
	for i := 0; i < 50; i++ {
		if got := stateFromContact(state); got != "IA" {
			t.Fatalf("iteration %d: stateFromContact = %q, want IA", i, got)
		}
	}

	// "MONTREAL" contains both ON and NT; provinces are scanned before
	// territories and in code order.
	ca := model.Contact{Callsign: "W1AW", Comment: "MONTREAL"}
	for i := 0; i < 50; i++ {
		if got := canadianLocation(ca); got != "ON" {
			t.Fatalf("iteration %d: canadianLocation = %q, want ON", i, got)
		}
	}

	// "NASA" contains NA, AS, and SA.
	cont := model.Contact{Callsign: "T99XYZ", Comment: "worked during the NASA event"}
	for i := 0; i < 50; i++ {
		if got := continentFromContact(cont); got != "AS" {
			t.Fatalf("iteration %d: continentFromContact = %q, want AS", i, got)
		}
	}
}
