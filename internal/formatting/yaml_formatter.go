package formatting

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// WriteYAML writes v as YAML. Field names follow the json tags, matching
// WriteJSON.
func WriteYAML(w io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
