package model

type PatientStatus string

const (
	PatientStatusRegistered PatientStatus = "registered"
	PatientStatusTriaged    PatientStatus = "triaged"
	PatientStatusInTransit  PatientStatus = "in_transit"
	PatientStatusDischarged PatientStatus = "discharged"
)

// Well-known record field keys. Records also carry arbitrary caller-supplied
// fields (name, age, condition, notes, ...) which are stored as-is.
const (
	FieldID               = "id"
	FieldStatus           = "status"
	FieldSeverity         = "severity"
	FieldRegistrationTime = "registration_time"
	FieldTriageTime       = "triage_time"
	FieldTransportTime    = "transport_time"
	FieldDischargeTime    = "discharge_time"
	FieldLastUpdated      = "last_updated"
	FieldDestination      = "destination"
	FieldTransportType    = "transport_type"
	FieldDischargeNotes   = "discharge_notes"
	FieldArrivalTime      = "arrival_time"
)

// ValueUnknown is the projection default for fields a record never set.
const ValueUnknown = "unknown"

// PatientRecord is a mutable patient record keyed by field name. A record
// holds the well-known fields above plus whatever the caller supplied.
type PatientRecord map[string]interface{}

func (r PatientRecord) ID() string {
	return r.StringField(FieldID)
}

// StringField returns the field rendered as a string, or ValueUnknown when
// the field is absent or not a string.
func (r PatientRecord) StringField(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ValueUnknown
}

// Clone returns a shallow copy so repository internals never escape.
func (r PatientRecord) Clone() PatientRecord {
	out := make(PatientRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge copies patch fields into the record, patch wins on collision.
func (r PatientRecord) Merge(patch JSONMap) {
	for k, v := range patch {
		r[k] = v
	}
}

// PatientSummary is the list projection of a record.
type PatientSummary struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	Severity         string `json:"severity"`
	RegistrationTime string `json:"registration_time"`
}

func (r PatientRecord) Summary() PatientSummary {
	return PatientSummary{
		ID:               r.StringField(FieldID),
		Status:           r.StringField(FieldStatus),
		Severity:         r.StringField(FieldSeverity),
		RegistrationTime: r.StringField(FieldRegistrationTime),
	}
}

// PatientList is the result of a list operation.
type PatientList struct {
	Count    int              `json:"count"`
	Patients []PatientSummary `json:"patients"`
}
