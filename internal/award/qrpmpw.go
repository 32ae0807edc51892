package award

import (
	"fmt"
	"math"

	"github.com/garyPenhook/skcclog/internal/model"
)

const (
	mpwEffectiveDate = "20140901"
	mpwRequired      = 1000.0
	// Logged distances are nautical miles; the award metric uses statute.
	nauticalToStatute = 1.15078
)

// QRPMPW is the miles-per-watt award: statute-mile distance divided by
// transmit power, qualifying at 1000 MPW. Endorsements run 1000/1500/2000
// and then continue unbounded in 500 MPW steps.
type QRPMPW struct {
	roster Roster
	op     Operator
}

func NewQRPMPW(roster Roster, op Operator) *QRPMPW {
	return &QRPMPW{roster: roster, op: op}
}

func (a *QRPMPW) Name() string      { return "QRP MPW" }
func (a *QRPMPW) ProgramID() string { return "SKCC_QRP_MPW" }

// MilesPerWatt computes the award metric for one contact, or 0 when the
// required fields are missing or out of range.
func MilesPerWatt(c model.Contact) float64 {
	if c.DistanceNM == nil || *c.DistanceNM <= 0 {
		return 0
	}
	if !validQRPPower(c.PowerWatts) {
		return 0
	}
	return *c.DistanceNM * nauticalToStatute / *c.PowerWatts
}

func (a *QRPMPW) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	date := qsoDate(c)
	if date == "" || date < mpwEffectiveDate {
		return false
	}
	if excludedCall(c, "") {
		return false
	}
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	if a.op.JoinDate != "" && date < a.op.JoinDate {
		return false
	}
	return MilesPerWatt(c) >= mpwRequired
}

// MPWDetail reports the spread of qualifying contacts across thresholds.
type MPWDetail struct {
	BestMPW  float64 `json:"best_mpw"`
	Over1000 int     `json:"over_1000"`
	Over1500 int     `json:"over_1500"`
	Over2000 int     `json:"over_2000"`
}

func (a *QRPMPW) Progress(contacts []model.Contact) model.Progress {
	detail := MPWDetail{}
	var contributing []model.Contact
	for _, c := range sortChronological(contacts) {
		if !a.Validate(c) {
			continue
		}
		mpw := MilesPerWatt(c)
		contributing = append(contributing, c)
		if mpw > detail.BestMPW {
			detail.BestMPW = mpw
		}
		if mpw >= 1000 {
			detail.Over1000++
		}
		if mpw >= 1500 {
			detail.Over1500++
		}
		if mpw >= 2000 {
			detail.Over2000++
		}
	}

	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         detail.BestMPW,
		Required:        mpwRequired,
		Achieved:        detail.BestMPW >= mpwRequired,
		ProgressPct:     pct(detail.BestMPW, mpwRequired),
		Endorsement:     mpwEndorsement(detail.BestMPW),
		NextThreshold:   mpwNextThreshold(detail.BestMPW),
		PrerequisiteMet: true,
		Detail:          detail,
		Contacts:        contributing,
	}
}

// mpwEndorsement has no upper rung: beyond 2000 the level is the best MPW
// rounded down to the nearest 500.
func mpwEndorsement(best float64) string {
	switch {
	case best >= 2000:
		return fmt.Sprintf("%d MPW", int(math.Floor(best/500))*500)
	case best >= 1500:
		return "1500 MPW"
	case best >= 1000:
		return "QRP MPW"
	}
	return NotYet
}

func mpwNextThreshold(best float64) float64 {
	switch {
	case best >= 2000:
		return (math.Floor(best/500) + 1) * 500
	case best >= 1500:
		return 2000
	case best >= 1000:
		return 1500
	}
	return mpwRequired
}
