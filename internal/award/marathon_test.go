package award

import (
	"testing"

	"github.com/garyPenhook/skcclog/internal/model"
)

func TestMarathonMinimumDuration(t *testing.T) {
	a := NewMarathon(openRoster{}, Operator{})

	if a.Validate(chew("W1AW", "20240101", "100", 59)) {
		t.Error("59 minutes should not validate")
	}
	if !a.Validate(chew("W1AW", "20240101", "100", 60)) {
		t.Error("60 minutes should validate")
	}
}

func TestMarathonPerMemberCap(t *testing.T) {
	a := NewMarathon(openRoster{}, Operator{})

	contacts := []model.Contact{
		chew("W1AW", "20240201", "100", 90),
		chew("W1AW", "20240101", "100", 75), // earlier, should win
		chew("K4ABC", "20240301", "200", 60),
	}
	p := a.Progress(contacts)
	if p.Current != 135 {
		t.Errorf("minutes = %v, want 75+60=135", p.Current)
	}
	detail := p.Detail.(MarathonDetail)
	if detail.UniqueMembers != 2 {
		t.Errorf("unique members = %d, want 2", detail.UniqueMembers)
	}
	if detail.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", detail.Duplicates)
	}
}

func TestMarathonClubCallExcluded(t *testing.T) {
	a := NewMarathon(openRoster{}, Operator{})

	if a.Validate(chew("K9SKC", "20240101", "1", 90)) {
		t.Error("club call should never validate for Marathon")
	}
}

func TestMarathonEffectiveDate(t *testing.T) {
	a := NewMarathon(openRoster{}, Operator{})

	if a.Validate(chew("W1AW", "20071231", "100", 90)) {
		t.Error("contact before 20080101 should not validate")
	}
	if !a.Validate(chew("W1AW", "20080101", "100", 90)) {
		t.Error("contact on 20080101 should validate")
	}
}
