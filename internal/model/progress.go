package model

// Progress is the result of evaluating one award over a contact log. Current
// and Required are counts, minutes, or points depending on the award. Detail
// carries award-specific breakdowns (key-type buckets, maple tiers, etc.).
type Progress struct {
	Award           string    `json:"award"`
	ProgramID       string    `json:"program_id"`
	Current         float64   `json:"current"`
	Required        float64   `json:"required"`
	Achieved        bool      `json:"achieved"`
	ProgressPct     float64   `json:"progress_pct"`
	Endorsement     string    `json:"endorsement"`
	NextThreshold   float64   `json:"next_threshold"`
	PrerequisiteMet bool      `json:"prerequisite_met"`
	Detail          any       `json:"detail,omitempty"`
	Contacts        []Contact `json:"contacts,omitempty"`
}
