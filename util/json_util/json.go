// Package json_util provides JSON helpers shared by services.
package json_util

import (
	"github.com/goccy/go-json"
)

// MarshalString marshals v and returns the JSON as a string. Marshal failures
// collapse to the empty string; callers use this for best-effort audit
// columns where a lost detail must never fail the write.
func MarshalString(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
