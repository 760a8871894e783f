package report

import (
	"encoding/json"
	"os"
)

// ToJSON serializes the report, optionally pretty-printed.
func ToJSON(r *Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// WriteJSON writes the report as JSON to path.
func WriteJSON(r *Report, path string, pretty bool) error {
	data, err := ToJSON(r, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
