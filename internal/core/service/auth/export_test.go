package auth

import (
	"time"

	"family-timeline/internal/core/port"
)

// SetClock replaces the clock of a service built by NewAuthService
func SetClock(s port.AuthService, now func() time.Time) {
	s.(*authService).now = now
}
