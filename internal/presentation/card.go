package presentation

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
)

// Card is the render-ready unit handed to a rendering layer.
type Card struct {
	Listing         models.Listing
	Kinds           KindSet
	Decoration      Decoration
	DisplayImageURL string
}

// ImageAt returns the image shown at rotation index i. Out of range indices
// wrap around.
func (c Card) ImageAt(i int) string {
	images := DisplayImages(c.Listing)
	if i < 0 {
		i = 0
	}
	return images[i%len(images)]
}

// BuildCards resolves upgrades, orders listings sticky-first and decorates
// each of them.
func BuildCards(listings []*models.Listing, upgrades []models.Upgrade, now time.Time) ([]Card, error) {
	kinds := ActiveKindsByListing(upgrades, now)

	ordered, err := OrderForDisplay(listings, StickyIDs(kinds))
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(ordered))
	for _, l := range ordered {
		set := kinds[l.ID]
		if set == nil {
			set = KindSet{}
		}
		cards = append(cards, Card{
			Listing:         *l,
			Kinds:           set,
			Decoration:      Decorate(*l, set, now),
			DisplayImageURL: DisplayImages(*l)[0],
		})
	}
	return cards, nil
}
