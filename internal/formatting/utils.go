package formatting

import (
	"encoding/json"
)

// toGeneric converts v into maps and slices keyed by its JSON field names,
// so templates see the same keys as -o json.
func toGeneric(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
