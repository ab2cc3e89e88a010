// Package models holds the domain entities shared by the server, the
// presentation engine and the terminal client.
package models

import "time"

// ContactInfo carries independently optional contact channels of a listing.
type ContactInfo struct {
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
}

// Listing is one advertised offering shown in the browse grid.
//
// AvailableUntil is meaningful only while AvailableNow is true; a stored value
// may outlive the flag, use EffectiveAvailableUntil when reading it.
type Listing struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Location       string      `json:"location"`
	Category       string      `json:"category"`
	Images         []string    `json:"images"`
	ContactInfo    ContactInfo `json:"contact_info"`
	IsActive       bool        `json:"is_active"`
	AvailableNow   bool        `json:"available_now"`
	AvailableUntil *time.Time  `json:"available_until"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// EffectiveAvailableUntil returns AvailableUntil, or nil when the listing is
// not flagged as available now.
func (l *Listing) EffectiveAvailableUntil() *time.Time {
	if !l.AvailableNow {
		return nil
	}
	return l.AvailableUntil
}

// AvailabilityChange is the pair of fields written by the available-now toggle.
type AvailabilityChange struct {
	AvailableNow   bool       `json:"available_now"`
	AvailableUntil *time.Time `json:"available_until"`
}
