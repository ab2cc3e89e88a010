package presentation

import (
	"strings"

	"github.com/dmitrijs2005/unity/internal/models"
)

// FilterBySearch keeps the cards whose title or description contains term,
// ignoring case. An empty term keeps everything. Order is preserved.
func FilterBySearch(cards []Card, term string) []Card {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return cards
	}
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Listing.Title), term) ||
			strings.Contains(strings.ToLower(c.Listing.Description), term) {
			out = append(out, c)
		}
	}
	return out
}

// Facets returns the distinct locations and categories of listings in order
// of first appearance.
func Facets(listings []*models.Listing) (locations, categories []string) {
	seenLoc := map[string]struct{}{}
	seenCat := map[string]struct{}{}
	locations, categories = []string{}, []string{}
	for _, l := range listings {
		if l == nil {
			continue
		}
		if _, ok := seenLoc[l.Location]; !ok && l.Location != "" {
			seenLoc[l.Location] = struct{}{}
			locations = append(locations, l.Location)
		}
		if _, ok := seenCat[l.Category]; !ok && l.Category != "" {
			seenCat[l.Category] = struct{}{}
			categories = append(categories, l.Category)
		}
	}
	return locations, categories
}
