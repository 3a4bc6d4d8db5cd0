package session

import (
	"context"
	"time"
)

// RunTimer calls s.Tick every interval until the session ends or ctx is
// cancelled. It returns immediately for untimed sessions. A non-positive
// interval uses the session's configured tick interval.
func RunTimer(ctx context.Context, s *Session, interval time.Duration) error {
	if !s.State().Timed() {
		return nil
	}
	if interval <= 0 {
		interval = s.Config().TickInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Done():
			return nil
		case <-ticker.C:
			if st := s.Tick(); st.Ended() {
				return nil
			}
		}
	}
}
