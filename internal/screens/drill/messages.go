package drill

import "time"

// tickMsg advances the countdown of the session with the given ID.
type tickMsg struct {
	SessionID string
	At        time.Time
}
