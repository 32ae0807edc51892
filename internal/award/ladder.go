package award

// Rung is one endorsement level: the quantity needed and its label.
type Rung struct {
	Threshold float64
	Label     string
}

// Ladder is an ascending endorsement ladder. Step, when non-zero, extends
// the ladder past the last rung in fixed increments (the award families cap
// their printed lists but keep issuing endorsements beyond them).
type Ladder struct {
	Rungs []Rung
	Step  float64
}

// NotYet is reported while the base rung has not been reached.
const NotYet = "Not Yet"

// Endorsement returns the label of the highest rung at or below v.
func (l Ladder) Endorsement(v float64) string {
	if len(l.Rungs) == 0 || v < l.Rungs[0].Threshold {
		return NotYet
	}
	label := l.Rungs[0].Label
	for _, r := range l.Rungs {
		if v >= r.Threshold {
			label = r.Label
		} else {
			break
		}
	}
	return label
}

// Next returns the threshold of the next rung above v. Past the last rung it
// extends by Step; with no Step the last threshold is returned.
func (l Ladder) Next(v float64) float64 {
	for _, r := range l.Rungs {
		if v < r.Threshold {
			return r.Threshold
		}
	}
	if len(l.Rungs) == 0 {
		return 0
	}
	last := l.Rungs[len(l.Rungs)-1].Threshold
	if l.Step <= 0 {
		return last
	}
	n := last + l.Step
	for n <= v {
		n += l.Step
	}
	return n
}

// ladderFrom builds a Ladder from (threshold, label) pairs.
func ladderFrom(step float64, rungs ...Rung) Ladder {
	return Ladder{Rungs: rungs, Step: step}
}
