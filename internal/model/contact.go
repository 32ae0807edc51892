package model

import "time"

// Contact is a single logged QSO. Dates are zero-padded YYYYMMDD strings and
// times are HHMM strings so lexicographic comparison equals calendar order.
type Contact struct {
	ID              int64     `json:"id"`
	Callsign        string    `json:"callsign"`
	Date            string    `json:"date"`
	TimeOn          string    `json:"time_on"`
	Mode            string    `json:"mode"`
	Band            string    `json:"band"`
	KeyType         string    `json:"key_type"`
	SKCCNumber      string    `json:"skcc_number"`
	PowerWatts      *float64  `json:"power_watts"`
	TheirPowerWatts *float64  `json:"their_power_watts"`
	DistanceNM      *float64  `json:"distance_nm"`
	DurationMinutes *int      `json:"duration_minutes"`
	State           string    `json:"state"`
	Continent       string    `json:"continent"`
	Country         string    `json:"country"`
	GridSquare      string    `json:"grid_square"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

// Mechanical key types. Anything else present in a log entry disqualifies the
// contact for the whole award family; an empty key type is handled per award.
const (
	KeyStraight   = "STRAIGHT"
	KeyBug        = "BUG"
	KeySideswiper = "SIDESWIPER"
)

// MechanicalKeyTypes is the set of key types valid for SKCC awards.
var MechanicalKeyTypes = map[string]bool{
	KeyStraight:   true,
	KeyBug:        true,
	KeySideswiper: true,
}
