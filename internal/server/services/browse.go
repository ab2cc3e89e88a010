// Package services holds the server-side use cases: browsing, listing
// management, upgrades, identity and the availability sweep. Each service
// talks to persistence only through repomanager.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
	"github.com/dmitrijs2005/unity/internal/server/repositories/listings"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
	"golang.org/x/sync/errgroup"
)

// BrowseQuery mirrors the filters of the browse screen. Empty values do not
// filter.
type BrowseQuery struct {
	Location      string
	Category      string
	AvailableOnly bool
	Search        string
}

// BrowseResult is a render-ready page: ordered, decorated cards plus the
// facet values found among the fetched listings.
type BrowseResult struct {
	Cards      []presentation.Card
	Locations  []string
	Categories []string
}

type BrowseService struct {
	repos  repomanager.Repositories
	images ImageResolver
	logger logging.Logger
	now    Clock
}

func NewBrowseService(repos repomanager.Repositories, images ImageResolver, logger logging.Logger) *BrowseService {
	if images == nil {
		images = PassthroughResolver{}
	}
	return &BrowseService{repos: repos, images: images, logger: logger, now: systemClock}
}

// Browse fetches active listings and active upgrades concurrently, then
// builds the cards. A failure of either fetch fails the whole call.
func (s *BrowseService) Browse(ctx context.Context, q BrowseQuery) (*BrowseResult, error) {
	now := s.now()

	var (
		found  []*models.Listing
		active []*models.Upgrade
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		found, err = s.repos.Listings().List(gctx, listings.Filter{
			Location:      q.Location,
			Category:      q.Category,
			AvailableOnly: q.AvailableOnly,
		})
		if err != nil {
			return fmt.Errorf("load listings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		active, err = s.repos.Upgrades().ListActive(gctx, "", now)
		if err != nil {
			return fmt.Errorf("load upgrades: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, l := range found {
		s.resolveImages(ctx, l)
	}

	cards, err := presentation.BuildCards(found, derefUpgrades(active), now)
	if err != nil {
		return nil, err
	}

	locations, categories := presentation.Facets(found)
	cards = presentation.FilterBySearch(cards, q.Search)

	s.logger.Debug(ctx, "browse served",
		"listings", len(found), "upgrades", len(active), "cards", len(cards))

	return &BrowseResult{Cards: cards, Locations: locations, Categories: categories}, nil
}

// resolveImages rewrites l.Images in place. Images that cannot be resolved
// are dropped; a listing left without images renders the placeholder.
func (s *BrowseService) resolveImages(ctx context.Context, l *models.Listing) {
	if l == nil || len(l.Images) == 0 {
		return
	}
	resolved := make([]string, 0, len(l.Images))
	for _, ref := range l.Images {
		url, err := s.images.Resolve(ctx, ref)
		if err != nil {
			s.logger.Warn(ctx, "image dropped", "listing", l.ID, "ref", ref, "error", err)
			continue
		}
		resolved = append(resolved, url)
	}
	l.Images = resolved
}

func derefUpgrades(in []*models.Upgrade) []models.Upgrade {
	out := make([]models.Upgrade, 0, len(in))
	for _, u := range in {
		if u != nil {
			out = append(out, *u)
		}
	}
	return out
}
