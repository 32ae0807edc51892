package award

import (
	"testing"

	"github.com/garyPenhook/skcclog/internal/model"
)

func chew(call, date, number string, minutes int) model.Contact {
	c := qso(call, date, number)
	c.DurationMinutes = &minutes
	return c
}

func TestRagChewMinimumDuration(t *testing.T) {
	a := NewRagChew(openRoster{}, Operator{})

	if a.Validate(chew("W1AW", "20240101", "100", 29)) {
		t.Error("29 minutes should not validate")
	}
	if !a.Validate(chew("W1AW", "20240101", "100", 30)) {
		t.Error("30 minutes should validate")
	}
	if a.Validate(qso("W1AW", "20240101", "100")) {
		t.Error("missing duration should not validate")
	}
}

func TestRagChewEffectiveDate(t *testing.T) {
	a := NewRagChew(openRoster{}, Operator{})

	if a.Validate(chew("W1AW", "20130630", "100", 45)) {
		t.Error("contact before 20130701 should not validate")
	}
	if !a.Validate(chew("W1AW", "20130701", "100", 45)) {
		t.Error("contact on 20130701 should validate")
	}
}

func TestRagChewSameDayDedup(t *testing.T) {
	a := NewRagChew(openRoster{}, Operator{})

	contacts := []model.Contact{
		chew("W1AW", "20240101", "100", 40),
		chew("W1AW", "20240101", "100", 60), // same member, same day
		chew("W1AW", "20240102", "100", 35), // same member, next day
	}
	p := a.Progress(contacts)
	if p.Current != 75 {
		t.Errorf("minutes = %v, want 40+35=75", p.Current)
	}
	detail := p.Detail.(RagChewDetail)
	if detail.QualifyingContacts != 2 {
		t.Errorf("qualifying contacts = %d, want 2", detail.QualifyingContacts)
	}
}

func TestRagChewAchievement(t *testing.T) {
	a := NewRagChew(openRoster{}, Operator{})

	var contacts []model.Contact
	// Ten 30-minute chats: 300 minutes exactly.
	for day := 1; day <= 10; day++ {
		contacts = append(contacts, chew("W1AW", "202401"+twoDigits(day), "100", 30))
	}
	p := a.Progress(contacts)
	if !p.Achieved {
		t.Errorf("300 minutes should achieve Rag Chew, got %v", p.Current)
	}
	if p.Endorsement != "Rag Chew" {
		t.Errorf("endorsement = %q, want Rag Chew", p.Endorsement)
	}
	if p.NextThreshold != 600 {
		t.Errorf("next threshold = %v, want 600", p.NextThreshold)
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
