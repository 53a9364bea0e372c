// Package util contains small internal helpers that have not earned a place
// in the public API.
package util

import "github.com/google/uuid"

// NewID returns a new random identifier. Used to correlate a request's
// primary completion, summary call and agent runs in log output.
func NewID() string {
	return uuid.NewString()
}
