package award

import (
	"fmt"
	"testing"

	"github.com/garyPenhook/skcclog/internal/model"
)

func TestCenturionSuffixInvariance(t *testing.T) {
	a := NewCenturion(openRoster{}, Operator{})

	// One member logged with different status suffixes over time.
	contacts := []model.Contact{
		qso("W1AW", "20240101", "100"),
		qso("W1AW", "20240201", "100C"),
		qso("W1AW", "20240301", "100T"),
		qso("W1AW", "20240401", "100Sx2"),
	}
	p := a.Progress(contacts)
	if p.Current != 1 {
		t.Errorf("current = %v, want 1: suffixes must not split identity", p.Current)
	}
	if len(p.Contacts) != 1 || p.Contacts[0].Date != "20240101" {
		t.Error("chronologically first contact should be the contributor")
	}
}

func TestCenturionOrderIndependence(t *testing.T) {
	a := NewCenturion(openRoster{}, Operator{})

	forward := make([]model.Contact, 0, 10)
	for i := 0; i < 10; i++ {
		forward = append(forward, qso(fmt.Sprintf("W%dAA", i), fmt.Sprintf("202401%02d", i+1), fmt.Sprintf("%d", i+1)))
	}
	reversed := make([]model.Contact, len(forward))
	for i, c := range forward {
		reversed[len(forward)-1-i] = c
	}

	pf := a.Progress(forward)
	pr := a.Progress(reversed)
	if pf.Current != pr.Current {
		t.Errorf("order changed the count: %v vs %v", pf.Current, pr.Current)
	}
	if len(pf.Contacts) != len(pr.Contacts) {
		t.Fatalf("order changed contributing set size")
	}
	for i := range pf.Contacts {
		if pf.Contacts[i].Callsign != pr.Contacts[i].Callsign {
			t.Errorf("contributing contact %d differs: %s vs %s", i, pf.Contacts[i].Callsign, pr.Contacts[i].Callsign)
		}
	}
}

func TestCenturionThreshold(t *testing.T) {
	a := NewCenturion(openRoster{}, Operator{})

	var contacts []model.Contact
	for i := 0; i < 99; i++ {
		contacts = append(contacts, qso(fmt.Sprintf("K%dAB", i), "20240101", fmt.Sprintf("%d", i+1)))
	}
	p := a.Progress(contacts)
	if p.Achieved {
		t.Error("99 members should not achieve Centurion")
	}
	if p.ProgressPct != 99 {
		t.Errorf("progress = %v, want 99", p.ProgressPct)
	}
	if p.Endorsement != NotYet {
		t.Errorf("endorsement = %q, want %q", p.Endorsement, NotYet)
	}

	contacts = append(contacts, qso("W9ZZZ", "20240102", "100"))
	p = a.Progress(contacts)
	if !p.Achieved {
		t.Error("100 members should achieve Centurion")
	}
	if p.Endorsement != "Centurion" {
		t.Errorf("endorsement = %q, want Centurion", p.Endorsement)
	}
	if p.NextThreshold != 200 {
		t.Errorf("next threshold = %v, want 200", p.NextThreshold)
	}
}

func TestCenturionClubCallCutoff(t *testing.T) {
	a := NewCenturion(openRoster{}, Operator{})

	if !a.Validate(qso("K9SKC", "20091130", "1")) {
		t.Error("club call before 20091201 should validate")
	}
	if a.Validate(qso("K9SKC", "20091201", "1")) {
		t.Error("club call on 20091201 should not validate")
	}
}

func TestCenturionMembershipWindow(t *testing.T) {
	roster := fakeRoster{members: map[string]model.Member{
		"W1AW": {BaseNumber: "100", Callsign: "W1AW", JoinDate: "20200101"},
	}}
	a := NewCenturion(roster, Operator{JoinDate: "20190101"})

	if a.Validate(qso("W1AW", "20191231", "100")) {
		t.Error("contact before the remote member joined should not validate")
	}
	if !a.Validate(qso("W1AW", "20200101", "100")) {
		t.Error("contact on the remote join date should validate")
	}
	if a.Validate(qso("K9ZZZ", "20200101", "200")) {
		t.Error("unknown callsign should not validate")
	}
}

func TestCenturionOperatorJoinDate(t *testing.T) {
	a := NewCenturion(openRoster{}, Operator{JoinDate: "20200601"})

	if a.Validate(qso("W1AW", "20200531", "100")) {
		t.Error("contact before the operator joined should not validate")
	}
	if !a.Validate(qso("W1AW", "20200601", "100")) {
		t.Error("contact on the operator join date should validate")
	}
}
