package model

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the triage sort rank (lower is seen first) and whether the
// severity is one of the recognized labels.
func (s Severity) Rank() (int, bool) {
	switch s {
	case SeverityHigh:
		return 1, true
	case SeverityMedium:
		return 2, true
	case SeverityLow:
		return 3, true
	default:
		return 0, false
	}
}

// TriagePatient is an incoming patient descriptor. ArrivalTime is any
// totally-ordered value (integer tick or timestamp). Extra carries
// caller-supplied fields merged into the patient record on intake.
type TriagePatient struct {
	ID          string   `json:"id" binding:"required"`
	Severity    Severity `json:"severity" binding:"required"`
	ArrivalTime float64  `json:"arrival_time"`
	Extra       JSONMap  `json:"-"`
}

// TriageResult maps patient id to assigned 1-based priority.
type TriageResult map[string]int
