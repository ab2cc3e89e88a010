package presentation

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

// PlaceholderImageURL is shown for listings without images.
const PlaceholderImageURL = "https://images.pexels.com/photos/1323550/pexels-photo-1323550.jpeg?auto=compress&cs=tinysrgb&w=800"

// RotationInterval is how long each image stays on screen while rotating.
const RotationInterval = 3000 * time.Millisecond

// Decoration is everything the rendering layer needs to know about how a card
// should look, besides the listing itself.
type Decoration struct {
	Highlighted bool
	Sticky      bool

	// AvailableNowBadge mirrors the listing flag and does not re-check
	// AvailableUntil. AvailabilityStale reports the flag outliving its window.
	AvailableNowBadge  bool
	AvailableRemaining time.Duration
	AvailabilityStale  bool

	RotationEnabled  bool
	RotationInterval time.Duration
	ImageCount       int
}

// DisplayImages returns the listing images, or the placeholder when there
// are none.
func DisplayImages(l models.Listing) []string {
	if len(l.Images) == 0 {
		return []string{PlaceholderImageURL}
	}
	return l.Images
}

// Decorate derives the decoration of l from its in-effect upgrade kinds.
func Decorate(l models.Listing, kinds KindSet, now time.Time) Decoration {
	d := Decoration{
		Highlighted:       kinds.Has(models.UpgradeHighlight),
		Sticky:            kinds.Has(models.UpgradeSticky),
		AvailableNowBadge: l.AvailableNow,
		ImageCount:        len(DisplayImages(l)),
	}

	if until := l.EffectiveAvailableUntil(); until != nil {
		if until.After(now) {
			d.AvailableRemaining = until.Sub(now)
		} else {
			d.AvailabilityStale = true
		}
	}

	// the placeholder never rotates
	if kinds.Has(models.UpgradeImageRotation) && len(l.Images) > 1 {
		d.RotationEnabled = true
		d.RotationInterval = RotationInterval
	}

	return d
}
