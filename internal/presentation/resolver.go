package presentation

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

// KindSet is a set of upgrade kinds. The zero value is an empty set.
type KindSet map[models.UpgradeKind]struct{}

// Has reports whether k is in the set. It is safe on a nil set.
func (s KindSet) Has(k models.UpgradeKind) bool {
	_, ok := s[k]
	return ok
}

// Kinds returns the members in catalog order.
func (s KindSet) Kinds() []models.UpgradeKind {
	out := make([]models.UpgradeKind, 0, len(s))
	for _, k := range models.UpgradeKinds {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// InEffect reports whether u applies at now: it must be active and expire
// strictly after now.
func InEffect(u models.Upgrade, now time.Time) bool {
	return u.IsActive && u.ExpiresAt.After(now)
}

// ActiveUpgradeKinds returns the kinds with at least one in-effect upgrade for
// listingID. upgrades may contain records of other listings.
func ActiveUpgradeKinds(listingID string, upgrades []models.Upgrade, now time.Time) KindSet {
	set := KindSet{}
	for _, u := range upgrades {
		if u.ListingID != listingID || !InEffect(u, now) {
			continue
		}
		set[u.Kind] = struct{}{}
	}
	return set
}

// ActiveKindsByListing resolves the whole upgrade table in one pass. Listings
// without in-effect upgrades are absent from the result.
func ActiveKindsByListing(upgrades []models.Upgrade, now time.Time) map[string]KindSet {
	out := make(map[string]KindSet)
	for _, u := range upgrades {
		if !InEffect(u, now) {
			continue
		}
		set, ok := out[u.ListingID]
		if !ok {
			set = KindSet{}
			out[u.ListingID] = set
		}
		set[u.Kind] = struct{}{}
	}
	return out
}

// StickyIDs extracts the listings that have a sticky upgrade in effect.
func StickyIDs(kinds map[string]KindSet) map[string]struct{} {
	out := make(map[string]struct{})
	for id, set := range kinds {
		if set.Has(models.UpgradeSticky) {
			out[id] = struct{}{}
		}
	}
	return out
}
