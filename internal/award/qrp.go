package award

import (
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

const (
	qrpMaxWatts = 5.0
	// 60 m joined the QRP band list later than the rest.
	qrp60mEffectiveDate = "20130901"

	qrp1xRequired = 300
	qrp2xRequired = 150
)

// Fixed point value per band. Harder bands pay more.
var qrpBandPoints = map[string]float64{
	"160M": 4.0,
	"80M":  3.0,
	"10M":  3.0,
	"60M":  2.0,
	"40M":  2.0,
	"30M":  2.0,
	"20M":  1.0,
	"17M":  1.0,
	"15M":  1.0,
	"12M":  1.0,
	"6M":   0.5,
	"2M":   0.5,
}

// QRP is the points-based low-power award pair. 1xQRP requires the
// operator's own power at or under 5 W; 2xQRP requires both stations'. At
// most one contact per (member, band) pair counts, first chronologically.
type QRP struct {
	roster    Roster
	op        Operator
	name      string
	programID string
	required  float64
	bothQRP   bool
}

// NewQRP1x builds the single-sided QRP award (300 points).
func NewQRP1x(roster Roster, op Operator) *QRP {
	return &QRP{
		roster: roster, op: op,
		name: "1xQRP", programID: "SKCC_QRP_1X",
		required: qrp1xRequired, bothQRP: false,
	}
}

// NewQRP2x builds the two-sided QRP award (150 points).
func NewQRP2x(roster Roster, op Operator) *QRP {
	return &QRP{
		roster: roster, op: op,
		name: "2xQRP", programID: "SKCC_QRP_2X",
		required: qrp2xRequired, bothQRP: true,
	}
}

func (a *QRP) Name() string      { return a.name }
func (a *QRP) ProgramID() string { return a.programID }

func validQRPPower(p *float64) bool {
	return p != nil && *p > 0 && *p <= qrpMaxWatts
}

func (a *QRP) bandAllowed(band, date string) bool {
	if _, ok := qrpBandPoints[band]; !ok {
		return false
	}
	if band == "60M" {
		return date != "" && date >= qrp60mEffectiveDate
	}
	return true
}

func (a *QRP) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if !a.bandAllowed(normalizeBand(c.Band), date) {
		return false
	}
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	if a.op.JoinDate != "" && date != "" && date < a.op.JoinDate {
		return false
	}
	if !validQRPPower(c.PowerWatts) {
		return false
	}
	if a.bothQRP && !validQRPPower(c.TheirPowerWatts) {
		return false
	}
	return true
}

// QRPDetail breaks points down by band.
type QRPDetail struct {
	PointsByBand map[string]float64 `json:"points_by_band"`
	QSOsByBand   map[string]int     `json:"qsos_by_band"`
	Duplicates   int                `json:"duplicates"`
}

func (a *QRP) Progress(contacts []model.Contact) model.Progress {
	type memberBand struct{ base, band string }
	seen := make(map[memberBand]bool)
	pointsByBand := make(map[string]float64)
	qsosByBand := make(map[string]int)
	duplicates := 0
	total := 0.0
	var contributing []model.Contact

	for _, c := range sortChronological(contacts) {
		if !a.Validate(c) {
			continue
		}
		band := normalizeBand(c.Band)
		base := skcc.ExtractBaseNumber(c.SKCCNumber)
		key := memberBand{base, band}
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		points := qrpBandPoints[band]
		total += points
		pointsByBand[band] += points
		qsosByBand[band]++
		contributing = append(contributing, c)
	}

	return model.Progress{
		Award:           a.name,
		ProgramID:       a.programID,
		Current:         total,
		Required:        a.required,
		Achieved:        total >= a.required,
		ProgressPct:     pct(total, a.required),
		Endorsement:     qrpEndorsement(a.name, total, a.required),
		NextThreshold:   a.required,
		PrerequisiteMet: true,
		Detail: QRPDetail{
			PointsByBand: pointsByBand,
			QSOsByBand:   qsosByBand,
			Duplicates:   duplicates,
		},
		Contacts: contributing,
	}
}

func qrpEndorsement(name string, total, required float64) string {
	if total >= required {
		return name
	}
	return NotYet
}
