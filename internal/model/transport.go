package model

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

type VehicleType string

const (
	VehicleHelicopter   VehicleType = "helicopter"
	VehicleAmbulance    VehicleType = "ambulance"
	VehicleNonEmergency VehicleType = "non-emergency vehicle"
)

// Vehicle maps urgency to the transport type dispatched for it.
func (u Urgency) Vehicle() (VehicleType, bool) {
	switch u {
	case UrgencyHigh:
		return VehicleHelicopter, true
	case UrgencyMedium:
		return VehicleAmbulance, true
	case UrgencyLow:
		return VehicleNonEmergency, true
	default:
		return "", false
	}
}

type TransportStatus string

const (
	TransportOrganized   TransportStatus = "organized"
	TransportUnavailable TransportStatus = "unavailable"
	TransportError       TransportStatus = "error"
)

// TransportResult is always returned, even on failure; callers inspect
// TransportStatus and Error rather than a Go error.
type TransportResult struct {
	PatientID       string          `json:"patient_id"`
	TransportStatus TransportStatus `json:"transport_status"`
	TransportType   VehicleType     `json:"transport_type,omitempty"`
	Destination     string          `json:"destination,omitempty"`
	Error           string          `json:"error,omitempty"`
}

func (r TransportResult) AsMap() map[string]interface{} {
	out := map[string]interface{}{
		"patient_id":       r.PatientID,
		"transport_status": string(r.TransportStatus),
	}
	if r.TransportType != "" {
		out["transport_type"] = string(r.TransportType)
	}
	if r.Destination != "" {
		out["destination"] = r.Destination
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	return out
}
