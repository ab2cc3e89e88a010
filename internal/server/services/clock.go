package services

import "time"

// Clock supplies "now" to the services so tests can pin time.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }
