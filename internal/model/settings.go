package model

// Settings holds the operator's own identity and achievement dates, all
// supplied by the user and stored alongside the log.
type Settings struct {
	Callsign      string `json:"callsign"`
	SKCCNumber    string `json:"skcc_number"`
	JoinDate      string `json:"join_date"`       // YYYYMMDD
	CenturionDate string `json:"centurion_date"`  // YYYYMMDD, empty until earned
	TribuneX8Date string `json:"tribune_x8_date"` // YYYYMMDD override; derived when empty
}
