package presentation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/unity/internal/models"
)

// ErrNilListing is returned when a listing sequence contains a nil reference.
var ErrNilListing = errors.New("nil listing reference")

// OrderForDisplay returns a new slice with sticky listings first. The sort is
// stable, so the upstream created_at DESC order survives inside both the
// sticky and the non-sticky partition. The input slice is not modified.
func OrderForDisplay(listings []*models.Listing, sticky map[string]struct{}) ([]*models.Listing, error) {
	for i, l := range listings {
		if l == nil {
			return nil, fmt.Errorf("order for display: position %d: %w", i, ErrNilListing)
		}
	}

	out := slices.Clone(listings)
	if out == nil {
		out = []*models.Listing{}
	}

	slices.SortStableFunc(out, func(a, b *models.Listing) int {
		_, as := sticky[a.ID]
		_, bs := sticky[b.ID]
		switch {
		case as && !bs:
			return -1
		case !as && bs:
			return 1
		default:
			return 0
		}
	})

	return out, nil
}
