// Package api holds the JSON messages of the HTTP API and the conversions
// between domain values and the protobuf messages of internal/proto.
package api

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
)

type PingResponse struct {
	Status string `json:"status"`
}

type BrowseRequest struct {
	Location      string `json:"location,omitempty"`
	Category      string `json:"category,omitempty"`
	AvailableOnly bool   `json:"available_only,omitempty"`
	Search        string `json:"search,omitempty"`
}

// Decoration carries presentation.Decoration with durations in milliseconds.
type Decoration struct {
	Highlighted          bool  `json:"highlighted"`
	Sticky               bool  `json:"sticky"`
	AvailableNowBadge    bool  `json:"available_now_badge"`
	AvailableRemainingMs int64 `json:"available_remaining_ms,omitempty"`
	AvailabilityStale    bool  `json:"availability_stale,omitempty"`
	RotationEnabled      bool  `json:"rotation_enabled"`
	RotationIntervalMs   int64 `json:"rotation_interval_ms,omitempty"`
	ImageCount           int   `json:"image_count"`
}

type Card struct {
	Listing         models.Listing       `json:"listing"`
	Upgrades        []models.UpgradeKind `json:"upgrades"`
	Decoration      Decoration           `json:"decoration"`
	DisplayImageURL string               `json:"display_image_url"`
}

type BrowseResponse struct {
	Cards      []Card   `json:"cards"`
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
}

type ListUpgradeOptionsResponse struct {
	Options []models.UpgradeOption `json:"options"`
}

type MyListingsResponse struct {
	Listings []models.Listing `json:"listings"`
}

type CreateListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
}

type ListingResponse struct {
	Listing models.Listing `json:"listing"`
}

type PurchaseUpgradeRequest struct {
	ListingID string `json:"listing_id"`
	Kind      string `json:"upgrade_type"`
}

type PurchaseUpgradeResponse struct {
	Upgrade models.Upgrade `json:"upgrade"`
}

type ListActiveUpgradesResponse struct {
	Upgrades []models.Upgrade `json:"upgrades"`
}

type PurchaseHistoryResponse struct {
	Purchases []models.UpgradePurchase `json:"purchases"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func durationMs(d time.Duration) int64 { return d.Milliseconds() }

// WireListing returns l as it is sent to clients: AvailableUntil is dropped
// unless the listing is flagged as available now.
func WireListing(l models.Listing) models.Listing {
	l.AvailableUntil = l.EffectiveAvailableUntil()
	return l
}

// NewListingResponse wraps l in its wire form.
func NewListingResponse(l *models.Listing) ListingResponse {
	return ListingResponse{Listing: WireListing(*l)}
}

// FromCard converts an engine card to its wire form.
func FromCard(c presentation.Card) Card {
	d := c.Decoration
	return Card{
		Listing:  WireListing(c.Listing),
		Upgrades: c.Kinds.Kinds(),
		Decoration: Decoration{
			Highlighted:          d.Highlighted,
			Sticky:               d.Sticky,
			AvailableNowBadge:    d.AvailableNowBadge,
			AvailableRemainingMs: durationMs(d.AvailableRemaining),
			AvailabilityStale:    d.AvailabilityStale,
			RotationEnabled:      d.RotationEnabled,
			RotationIntervalMs:   durationMs(d.RotationInterval),
			ImageCount:           d.ImageCount,
		},
		DisplayImageURL: c.DisplayImageURL,
	}
}

func FromCards(cards []presentation.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = FromCard(c)
	}
	return out
}

// DerefListings copies listings into a value slice in wire form, skipping
// nils.
func DerefListings(in []*models.Listing) []models.Listing {
	out := make([]models.Listing, 0, len(in))
	for _, l := range in {
		if l != nil {
			out = append(out, WireListing(*l))
		}
	}
	return out
}

func DerefUpgrades(in []*models.Upgrade) []models.Upgrade {
	out := make([]models.Upgrade, 0, len(in))
	for _, u := range in {
		if u != nil {
			out = append(out, *u)
		}
	}
	return out
}

func DerefPurchases(in []*models.UpgradePurchase) []models.UpgradePurchase {
	out := make([]models.UpgradePurchase, 0, len(in))
	for _, p := range in {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
