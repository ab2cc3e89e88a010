package presentation

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

const (
	// DefaultAvailableWindow is how long "available now" lasts once switched on.
	DefaultAvailableWindow = 4 * time.Hour
	// ExtendedAvailableWindow is the window granted by the
	// available_now_extended upgrade, for callers that wire it in.
	ExtendedAvailableWindow = 24 * time.Hour
)

// ToggleAvailableNow computes the new availability fields of l. Switching on
// opens a window of the given length starting at now (DefaultAvailableWindow
// when window <= 0); switching off clears AvailableUntil.
func ToggleAvailableNow(l models.Listing, now time.Time, window time.Duration) models.AvailabilityChange {
	if l.AvailableNow {
		return models.AvailabilityChange{AvailableNow: false}
	}
	if window <= 0 {
		window = DefaultAvailableWindow
	}
	until := now.Add(window)
	return models.AvailabilityChange{AvailableNow: true, AvailableUntil: &until}
}
