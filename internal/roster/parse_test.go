package roster

import "testing"

const memberPageFixture = `
<table>
<tr><td>660C</td><td>W4GNS</td><td>Gary</td><td>Boones Mill</td><td>VA</td><td>3 Feb 2006</td></tr>
<tr><td>12345</td><td>k4abc</td><td>Alice</td><td>Atlanta</td><td>GA</td><td>28 Jan 2015</td></tr>
<tr><td>200</td><td>N1SK/SK</td><td>Silent Key</td><td>Boston</td><td>MA</td><td>1 Mar 2007</td></tr>
<tr><td>300T</td><td>VE3XYZ</td><td>Bob</td><td>Toronto</td><td>on</td><td>bad date here</td></tr>
</table>`

func TestParseMembers(t *testing.T) {
	members := ParseMembers(memberPageFixture)
	if len(members) != 2 {
		t.Fatalf("parsed %d members, want 2 (silent key and bad date dropped)", len(members))
	}

	first := members[0]
	if first.BaseNumber != "660" || first.Suffix != "C" {
		t.Errorf("first member number = %s/%s, want 660/C", first.BaseNumber, first.Suffix)
	}
	if first.Callsign != "W4GNS" {
		t.Errorf("callsign = %q, want W4GNS", first.Callsign)
	}
	if first.JoinDate != "20060203" {
		t.Errorf("join date = %q, want 20060203", first.JoinDate)
	}
	if first.SPC != "VA" {
		t.Errorf("spc = %q, want VA", first.SPC)
	}

	second := members[1]
	if second.Callsign != "K4ABC" {
		t.Errorf("callsign should be uppercased, got %q", second.Callsign)
	}
	if second.Suffix != "" {
		t.Errorf("suffix = %q, want empty", second.Suffix)
	}
}

const tribunePageFixture = `
<table>
<tr><td>1 x8</td><td>W1AW</td><td>100</td><td>extra</td><td>5 May 2012</td></tr>
<tr><td>2</td><td>K4ABC</td><td>200</td><td>extra</td><td>17 Nov 2014</td></tr>
</table>`

func TestParseAwardRollTribune(t *testing.T) {
	entries := ParseAwardRoll(RollTribune, tribunePageFixture)
	if len(entries) != 2 {
		t.Fatalf("parsed %d entries, want 2", len(entries))
	}
	if entries[0].BaseNumber != "100" || entries[0].AwardDate != "20120505" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[0].AwardType != RollTribune {
		t.Errorf("award type = %q, want %q", entries[0].AwardType, RollTribune)
	}
	if entries[1].Callsign != "K4ABC" {
		t.Errorf("callsign = %q, want K4ABC", entries[1].Callsign)
	}
}

const senatorPageFixture = `
<table>
<tr><td>1</td><td>N1XYZ</td><td>300</td><td>note</td><td>9 Aug 2015</td></tr>
</table>`

func TestParseAwardRollPlain(t *testing.T) {
	entries := ParseAwardRoll(RollSenator, senatorPageFixture)
	if len(entries) != 1 {
		t.Fatalf("parsed %d entries, want 1", len(entries))
	}
	if entries[0].AwardDate != "20150809" {
		t.Errorf("award date = %q, want 20150809", entries[0].AwardDate)
	}
}

func TestParseRosterDate(t *testing.T) {
	tests := []struct {
		raw, want string
		wantErr   bool
	}{
		{"28 Jan 2006", "20060128", false},
		{"3 Feb 2006", "20060203", false},
		{"17 nov 2014", "20141117", false},
		{"Jan 2006", "", true},
		{"28 Foo 2006", "", true},
		{"28 Jan 06", "", true},
	}
	for _, tt := range tests {
		got, err := parseRosterDate(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRosterDate(%q) succeeded, want error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRosterDate(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRosterDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
