package presentation

import (
	"slices"
	"sync"
	"time"
)

type rotationSlot struct {
	rotator *Rotator
	count   int
	images  []string
}

// Rotations owns the rotators of one rendered view, one per card. Each card
// gets its own Rotator; nothing is shared between listings.
type Rotations struct {
	mu        sync.Mutex
	interval  time.Duration
	newTicker NewTickerFunc
	slots     map[string]rotationSlot
	closed    bool
}

// NewRotations returns an empty owner. Zero interval and nil newTicker take
// the StartRotator defaults.
func NewRotations(interval time.Duration, newTicker NewTickerFunc) *Rotations {
	return &Rotations{
		interval:  interval,
		newTicker: newTicker,
		slots:     make(map[string]rotationSlot),
	}
}

// Sync reconciles the running rotators with cards: cards that newly rotate
// acquire a rotator, cards that left the view or lost rotation release
// theirs, and a changed image list restarts from index 0.
func (rs *Rotations) Sync(cards []Card) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.closed {
		return
	}

	wanted := make(map[string]Card, len(cards))
	for _, c := range cards {
		if c.Decoration.RotationEnabled {
			wanted[c.Listing.ID] = c
		}
	}

	for id, slot := range rs.slots {
		c, ok := wanted[id]
		if !ok || c.Decoration.ImageCount != slot.count || !slices.Equal(c.Listing.Images, slot.images) {
			slot.rotator.Stop()
			delete(rs.slots, id)
		}
	}

	for id, c := range wanted {
		if _, ok := rs.slots[id]; ok {
			continue
		}
		rs.slots[id] = rotationSlot{
			rotator: StartRotator(c.Decoration.ImageCount, rs.interval, rs.newTicker),
			count:   c.Decoration.ImageCount,
			images:  slices.Clone(c.Listing.Images),
		}
	}
}

// Index returns the current image index of a listing, 0 when it does not
// rotate.
func (rs *Rotations) Index(listingID string) int {
	rs.mu.Lock()
	slot, ok := rs.slots[listingID]
	rs.mu.Unlock()
	if !ok {
		return 0
	}
	return slot.rotator.Index()
}

// Len returns the number of running rotators.
func (rs *Rotations) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.slots)
}

// Close stops every rotator. Later Sync calls are ignored.
func (rs *Rotations) Close() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for id, slot := range rs.slots {
		slot.rotator.Stop()
		delete(rs.slots, id)
	}
	rs.closed = true
}
