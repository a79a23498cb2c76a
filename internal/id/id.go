// Package id generates client-local identifiers.
// The backend assigns entity ids; these are only used for correlating
// outbound requests in logs.
package id

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// requestIDLength keeps correlation ids short enough to scan in log lines.
const requestIDLength = 12

// Request returns a fresh request correlation id, e.g. "req-Fy2hK0p3xQ9Z".
// Falls back to "req-unknown" if the system entropy source fails; a log
// correlation id is not worth failing a request over.
func Request() string {
	id, err := gonanoid.New(requestIDLength)
	if err != nil {
		return "req-unknown"
	}
	return "req-" + id
}
