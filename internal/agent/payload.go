package agent

import (
	"encoding/json"
	"fmt"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/pkg/errors"
)

// Payload extraction for the loosely-typed request mappings. Absent and
// mistyped fields both surface as MissingField errors so the dispatcher can
// fold them into the uniform error envelope.

func stringField(message map[string]interface{}, key string) (string, error) {
	v, ok := message[key]
	if !ok {
		return "", errors.MissingField(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", &errors.AppError{
			Code:    errors.ErrMissingField,
			Message: fmt.Sprintf("%s must be a string", key),
		}
	}
	return s, nil
}

func optionalStringField(message map[string]interface{}, key string) (string, bool, error) {
	v, ok := message[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, &errors.AppError{
			Code:    errors.ErrMissingField,
			Message: fmt.Sprintf("%s must be a string", key),
		}
	}
	return s, true, nil
}

func intField(message map[string]interface{}, key string) (int, error) {
	v, ok := message[key]
	if !ok {
		return 0, errors.MissingField(key)
	}
	n, ok := asInt(v)
	if !ok {
		return 0, &errors.AppError{
			Code:    errors.ErrMissingField,
			Message: fmt.Sprintf("%s must be an integer", key),
		}
	}
	return n, nil
}

func mapField(message map[string]interface{}, key string) (model.JSONMap, error) {
	v, ok := message[key]
	if !ok {
		return nil, errors.MissingField(key)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		if jm, ok := v.(model.JSONMap); ok {
			return jm, nil
		}
		return nil, &errors.AppError{
			Code:    errors.ErrMissingField,
			Message: fmt.Sprintf("%s must be an object", key),
		}
	}
	return model.JSONMap(m), nil
}

func decodeTriagePatients(v interface{}) ([]model.TriagePatient, error) {
	if v == nil {
		return nil, errors.MissingField("patients")
	}
	items, ok := v.([]interface{})
	if !ok {
		// direct callers may already hold typed descriptors
		if typed, ok := v.([]model.TriagePatient); ok {
			return typed, nil
		}
		return nil, &errors.AppError{
			Code:    errors.ErrMissingField,
			Message: "patients must be a list",
		}
	}

	out := make([]model.TriagePatient, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, &errors.AppError{
				Code:    errors.ErrMissingField,
				Message: "each patient descriptor must be an object",
			}
		}

		id, err := stringField(entry, model.FieldID)
		if err != nil {
			return nil, err
		}
		severity, err := stringField(entry, model.FieldSeverity)
		if err != nil {
			return nil, err
		}
		arrivalRaw, ok := entry[model.FieldArrivalTime]
		if !ok {
			return nil, errors.MissingField(model.FieldArrivalTime)
		}
		arrival, ok := asFloat(arrivalRaw)
		if !ok {
			return nil, &errors.AppError{
				Code:    errors.ErrMissingField,
				Message: "arrival_time must be a number",
			}
		}

		extra := make(model.JSONMap)
		for k, val := range entry {
			switch k {
			case model.FieldID, model.FieldSeverity, model.FieldArrivalTime:
			default:
				extra[k] = val
			}
		}

		out = append(out, model.TriagePatient{
			ID:          id,
			Severity:    model.Severity(severity),
			ArrivalTime: arrival,
			Extra:       extra,
		})
	}
	return out, nil
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
