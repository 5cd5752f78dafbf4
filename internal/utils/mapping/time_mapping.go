// Package mapping converts between the API's wire shapes and the domain
// types. Every function here is pure and total: missing or malformed wire
// fields decode to zero values, and encode/decode are inverses on the
// fields the wire format round-trips.
package mapping

import "time"

const dateOnly = "2006-01-02"

// parseWireTime accepts the formats the API emits: RFC3339 timestamps and
// bare dates. Anything else decodes to the zero time.
func parseWireTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t
	}
	return time.Time{}
}

func formatWireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
