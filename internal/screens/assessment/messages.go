package assessment

import (
	"time"
)

// tickMsg is sent every second to refresh the countdown and poll for a
// timer-triggered finish.
type tickMsg time.Time

// startFailedMsg is sent when the attempt could not be started.
type startFailedMsg struct {
	Err error
}
