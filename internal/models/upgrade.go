package models

import (
	"fmt"
	"time"
)

// UpgradeKind is the closed set of purchasable listing upgrades.
type UpgradeKind string

const (
	UpgradeImageRotation        UpgradeKind = "image_rotation"
	UpgradeHighlight            UpgradeKind = "highlight"
	UpgradeSticky               UpgradeKind = "sticky"
	UpgradeAvailableNowExtended UpgradeKind = "available_now_extended"
)

// UpgradeKinds lists every known kind in catalog order.
var UpgradeKinds = []UpgradeKind{
	UpgradeImageRotation,
	UpgradeHighlight,
	UpgradeSticky,
	UpgradeAvailableNowExtended,
}

func (k UpgradeKind) Valid() bool {
	for _, known := range UpgradeKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseUpgradeKind converts s into a known UpgradeKind.
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	k := UpgradeKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown upgrade kind %q", s)
	}
	return k, nil
}

// Upgrade is a time-boxed enhancement attached to one listing. It references
// the listing by ID and is never mutated after creation.
type Upgrade struct {
	ID        string      `json:"id"`
	ListingID string      `json:"listing_id"`
	Kind      UpgradeKind `json:"upgrade_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

// UpgradePurchase is the write-once audit record of an upgrade purchase.
type UpgradePurchase struct {
	ID           string      `json:"id,omitempty"`
	UserID       string      `json:"user_id"`
	ListingID    string      `json:"listing_id"`
	Kind         UpgradeKind `json:"upgrade_type"`
	DurationDays int         `json:"duration_days"`
	CreatedAt    time.Time   `json:"created_at"`
}
