package testenv

import "encoding/json"

// FromJSON unmarshals from JSON string.
// Error causes panic.
func FromJSON(j string, ptr any) {
	if e := json.Unmarshal([]byte(j), ptr); e != nil {
		panic(e)
	}
}
