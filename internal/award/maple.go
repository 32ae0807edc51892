package award

import (
	"sort"

	"github.com/garyPenhook/skcclog/internal/model"
)

const (
	mapleProvincesEffective   = "20090901"
	mapleTerritoriesEffective = "20140101"
	mapleLocationsRequired    = 10
	mapleQRPWatts             = 5.0
)

// All 10 HF bands count for the Yellow and Orange tiers.
var mapleAllBands = map[string]bool{
	"160M": true, "80M": true, "60M": true, "40M": true, "30M": true,
	"20M": true, "17M": true, "15M": true, "12M": true, "10M": true,
}

// The strict Red and Gold tiers use the 9-band set without 60M.
var mapleStrictBands = map[string]bool{
	"160M": true, "80M": true, "40M": true, "30M": true,
	"20M": true, "17M": true, "15M": true, "12M": true, "10M": true,
}

// MapleTier is the progress of one Canadian Maple tier.
type MapleTier struct {
	Achieved  bool     `json:"achieved"`
	Count     int      `json:"count"`
	Required  int      `json:"required"`
	Band      string   `json:"band,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

// MapleDetail reports all four tiers.
type MapleDetail struct {
	Yellow MapleTier `json:"yellow"`
	Orange MapleTier `json:"orange"`
	Red    MapleTier `json:"red"`
	Gold   MapleTier `json:"gold"`
}

// Maple is the Canadian Maple award: a province/territory × band presence
// matrix with four tiers. Yellow needs 10 distinct locations on any bands,
// Orange 10 on one single band, Red the full 10×9 matrix, and Gold the same
// matrix with every contributing contact at 5 W or less.
type Maple struct {
	roster Roster
	op     Operator
}

func NewMaple(roster Roster, op Operator) *Maple {
	return &Maple{roster: roster, op: op}
}

func (a *Maple) Name() string      { return "Canadian Maple" }
func (a *Maple) ProgramID() string { return "SKCC_CANADIAN_MAPLE" }

func (a *Maple) Validate(c model.Contact) bool {
	if !PassesCommonRules(c) {
		return false
	}
	loc := canadianLocation(c)
	if loc == "" {
		return false
	}
	date := qsoDate(c)
	// Provinces and territories joined the award on different dates.
	if canadianProvinces[loc] {
		if date == "" || date < mapleProvincesEffective {
			return false
		}
	} else if date == "" || date < mapleTerritoriesEffective {
		return false
	}
	if !a.roster.WasMemberOnDate(c.Callsign, date) {
		return false
	}
	if a.op.JoinDate != "" && date < a.op.JoinDate {
		return false
	}
	return true
}

func (a *Maple) Progress(contacts []model.Contact) model.Progress {
	yellow := make(map[string]bool)
	byBand := make(map[string]map[string]bool)      // band -> locations
	redMatrix := make(map[string]map[string]bool)   // location -> strict bands
	goldMatrix := make(map[string]map[string]bool)  // location -> strict bands at QRP
	var contributing []model.Contact

	for _, c := range contacts {
		if !a.Validate(c) {
			continue
		}
		loc := canadianLocation(c)
		band := normalizeBand(c.Band)
		if band == "" {
			continue
		}
		contributing = append(contributing, c)
		yellow[loc] = true

		if mapleAllBands[band] {
			if byBand[band] == nil {
				byBand[band] = make(map[string]bool)
			}
			byBand[band][loc] = true
		}
		if mapleStrictBands[band] {
			if redMatrix[loc] == nil {
				redMatrix[loc] = make(map[string]bool)
			}
			redMatrix[loc][band] = true
			if c.PowerWatts != nil && *c.PowerWatts <= mapleQRPWatts {
				if goldMatrix[loc] == nil {
					goldMatrix[loc] = make(map[string]bool)
				}
				goldMatrix[loc][band] = true
			}
		}
	}

	detail := MapleDetail{
		Yellow: MapleTier{
			Achieved:  len(yellow) >= mapleLocationsRequired,
			Count:     len(yellow),
			Required:  mapleLocationsRequired,
			Locations: sortedKeys(yellow),
		},
		Orange: bestSingleBand(byBand),
		Red:    matrixTier(redMatrix),
		Gold:   matrixTier(goldMatrix),
	}

	endorsement := NotYet
	switch {
	case detail.Gold.Achieved:
		endorsement = "Gold Maple"
	case detail.Red.Achieved:
		endorsement = "Red Maple"
	case detail.Orange.Achieved:
		endorsement = "Orange Maple"
	case detail.Yellow.Achieved:
		endorsement = "Yellow Maple"
	}

	current := float64(detail.Yellow.Count)
	return model.Progress{
		Award:           a.Name(),
		ProgramID:       a.ProgramID(),
		Current:         current,
		Required:        mapleLocationsRequired,
		Achieved:        detail.Yellow.Achieved,
		ProgressPct:     pct(current, mapleLocationsRequired),
		Endorsement:     endorsement,
		NextThreshold:   mapleLocationsRequired,
		PrerequisiteMet: true,
		Detail:          detail,
		Contacts:        contributing,
	}
}

// bestSingleBand finds the band with the most distinct locations.
func bestSingleBand(byBand map[string]map[string]bool) MapleTier {
	tier := MapleTier{Required: mapleLocationsRequired}
	for band, locs := range byBand {
		if len(locs) > tier.Count || (len(locs) == tier.Count && band < tier.Band) {
			tier.Count = len(locs)
			tier.Band = band
			tier.Locations = sortedKeys(locs)
		}
	}
	tier.Achieved = tier.Count >= mapleLocationsRequired
	return tier
}

// matrixTier counts filled cells of the location × strict-band matrix. The
// tier is achieved once ten locations each have all nine bands filled.
func matrixTier(matrix map[string]map[string]bool) MapleTier {
	cells := 0
	complete := 0
	for _, bands := range matrix {
		cells += len(bands)
		if len(bands) == len(mapleStrictBands) {
			complete++
		}
	}
	return MapleTier{
		Achieved: complete >= mapleLocationsRequired,
		Count:    cells,
		Required: mapleLocationsRequired * len(mapleStrictBands),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
