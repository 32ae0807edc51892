package model

// Member is one row of the SKCC membership roster. The base number, not the
// callsign, is the durable identity: many callsigns may resolve to one member.
type Member struct {
	BaseNumber string `json:"base_number"`
	Suffix     string `json:"suffix"` // current C/T/S status suffix, may be empty
	Callsign   string `json:"callsign"`
	Name       string `json:"name"`
	City       string `json:"city"`
	SPC        string `json:"spc"` // state/province/country
	JoinDate   string `json:"join_date"` // YYYYMMDD
}

// AwardRosterEntry is one row of an official award roll (Centurion, Tribune,
// or Senator), keyed by base number with the date the award was earned.
type AwardRosterEntry struct {
	AwardType  string `json:"award_type"`
	BaseNumber string `json:"base_number"`
	Callsign   string `json:"callsign"`
	AwardDate  string `json:"award_date"` // YYYYMMDD
}
