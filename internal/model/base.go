package model

// JSONMap represents a generic JSON object
type JSONMap map[string]interface{}

// Clone returns a shallow copy of the map.
func (m JSONMap) Clone() JSONMap {
	out := make(JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
