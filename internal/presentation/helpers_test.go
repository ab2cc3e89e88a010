package presentation

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

var refNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func listing(id string, images ...string) *models.Listing {
	return &models.Listing{ID: id, Title: "title " + id, Images: images, IsActive: true}
}

func upgrade(listingID string, kind models.UpgradeKind, expires time.Time, active bool) models.Upgrade {
	return models.Upgrade{ID: listingID + "-" + string(kind), ListingID: listingID, Kind: kind, ExpiresAt: expires, IsActive: active}
}

func ids(ls []*models.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func set(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

type fakeTicker struct {
	c        chan time.Time
	interval time.Duration
	stopped  chan struct{}
}

func newFakeTicker(d time.Duration) *fakeTicker {
	return &fakeTicker{c: make(chan time.Time), interval: d, stopped: make(chan struct{})}
}

func (f *fakeTicker) Chan() <-chan time.Time { return f.c }
func (f *fakeTicker) Stop()                  { close(f.stopped) }

// tickerRecorder hands out fake tickers and keeps them for inspection.
type tickerRecorder struct {
	created chan *fakeTicker
}

func newTickerRecorder() *tickerRecorder {
	return &tickerRecorder{created: make(chan *fakeTicker, 16)}
}

func (r *tickerRecorder) New(d time.Duration) Ticker {
	t := newFakeTicker(d)
	r.created <- t
	return t
}
