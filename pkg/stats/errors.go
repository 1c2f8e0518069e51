package stats

import "fmt"

// TelemetryError identifies malformed telemetry by round and field.
// The engine never guesses a correction for malformed input.
type TelemetryError struct {
	Round  int
	Field  string
	Reason string
}

func (e *TelemetryError) Error() string {
	return fmt.Sprintf("malformed telemetry on round %d, field %q: %s", e.Round, e.Field, e.Reason)
}
