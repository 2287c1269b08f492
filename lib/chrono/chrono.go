// Package chrono decodes the timestamp representations used by the
// requester API. Instants are passed through untouched, no timezone
// conversion happens in this layer.
package chrono

import "time"

// DecodeTimestamp parses an ISO timestamp as returned by the remote API.
func DecodeTimestamp(tstr string) (time.Time, error) {
	return time.Parse(time.RFC3339, tstr)
}
