package award

import (
	"fmt"
	"testing"

	"github.com/garyPenhook/skcclog/internal/model"
)

func keyed(call, date, number, keyType string) model.Contact {
	c := qso(call, date, number)
	c.KeyType = keyType
	return c
}

func TestTripleKeyRequiresKeyType(t *testing.T) {
	a := NewTripleKey(openRoster{}, Operator{})

	if a.Validate(qso("W1AW", "20240101", "100")) {
		t.Error("missing key type should not validate for Triple Key")
	}
	if !a.Validate(keyed("W1AW", "20240101", "100", "SIDESWIPER")) {
		t.Error("sideswiper should validate")
	}
}

func TestTripleKeyEffectiveDate(t *testing.T) {
	a := NewTripleKey(openRoster{}, Operator{})

	if a.Validate(keyed("W1AW", "20181109", "100", "BUG")) {
		t.Error("contact before 20181110 should not validate")
	}
	if !a.Validate(keyed("W1AW", "20181110", "100", "BUG")) {
		t.Error("contact on 20181110 should validate")
	}
}

func TestTripleKeyFirstContactAssignsBucket(t *testing.T) {
	a := NewTripleKey(openRoster{}, Operator{})

	// Same member worked twice with different keys, given out of order. The
	// chronologically first (STRAIGHT) wins regardless of slice order.
	contacts := []model.Contact{
		keyed("W1AW", "20240201", "100", "BUG"),
		keyed("W1AW", "20240101", "100", "STRAIGHT"),
	}
	p := a.Progress(contacts)
	detail := p.Detail.(TripleKeyDetail)
	if detail.Straight != 1 || detail.Bug != 0 {
		t.Errorf("buckets = %+v, want straight=1 bug=0", detail)
	}
	if detail.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", detail.Duplicates)
	}

	reversed := []model.Contact{contacts[1], contacts[0]}
	p2 := a.Progress(reversed)
	if p2.Detail.(TripleKeyDetail) != detail {
		t.Error("bucket assignment depends on input order")
	}
}

func TestTripleKeyAchievement(t *testing.T) {
	a := NewTripleKey(openRoster{}, Operator{})

	var contacts []model.Contact
	n := 0
	for _, key := range []string{model.KeyStraight, model.KeyBug, model.KeySideswiper} {
		for i := 0; i < 100; i++ {
			n++
			contacts = append(contacts, keyed(fmt.Sprintf("W%dTK", n), "20240101", fmt.Sprintf("%d", n), key))
		}
	}
	p := a.Progress(contacts)
	if !p.Achieved {
		t.Error("100 per bucket should achieve Triple Key")
	}
	if p.Current != 100 {
		t.Errorf("current = %v, want the minimum bucket 100", p.Current)
	}
	if p.Endorsement != "Triple Key" {
		t.Errorf("endorsement = %q, want Triple Key", p.Endorsement)
	}

	// Starve one bucket and the award is lost even though the total grows.
	short := contacts[:299]
	p = a.Progress(short)
	if p.Achieved {
		t.Error("99 in one bucket should not achieve the award")
	}
	if p.Current != 99 {
		t.Errorf("current = %v, want the minimum bucket 99", p.Current)
	}
}
