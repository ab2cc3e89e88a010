package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
	"github.com/dmitrijs2005/unity/internal/server/repositories/listings"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// NewListing is the user-supplied part of a listing.
type NewListing struct {
	Title       string
	Description string
	Location    string
	Category    string
	Images      []string
	Phone       string
	Email       string
	Website     string
}

type ListingService struct {
	repos           repomanager.Repositories
	logger          logging.Logger
	availableWindow time.Duration
	now             Clock
}

// NewListingService builds the service. availableWindow is the length of the
// "available now" window; zero means presentation.DefaultAvailableWindow.
func NewListingService(repos repomanager.Repositories, logger logging.Logger, availableWindow time.Duration) *ListingService {
	return &ListingService{repos: repos, logger: logger, availableWindow: availableWindow, now: systemClock}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Create validates in and stores a new active listing owned by the caller.
// Only entertainers may attach more than one image.
func (s *ListingService) Create(ctx context.Context, id models.Identity, in NewListing) (*models.Listing, error) {
	if id.UserID == "" {
		return nil, common.ErrorUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	images := make([]string, 0, len(in.Images))
	for _, u := range in.Images {
		if u = strings.TrimSpace(u); u != "" {
			images = append(images, u)
		}
	}
	if len(images) > 1 && !id.IsEntertainer() {
		return nil, fmt.Errorf("%w: only entertainers can add more than one image", common.ErrorValidation)
	}

	now := s.now()
	l := &models.Listing{
		ID:          uuid.NewString(),
		UserID:      id.UserID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Category:    strings.TrimSpace(in.Category),
		Images:      images,
		ContactInfo: models.ContactInfo{
			Phone:   optional(in.Phone),
			Email:   optional(in.Email),
			Website: optional(in.Website),
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Listings().Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.Info(ctx, "listing created", "listing", l.ID, "user", id.UserID, "images", len(images))
	return l, nil
}

// MyListings returns the caller's active listings, newest first.
func (s *ListingService) MyListings(ctx context.Context, id models.Identity) ([]*models.Listing, error) {
	if id.UserID == "" {
		return nil, common.ErrorUnauthorized
	}
	out, err := s.repos.Listings().List(ctx, listings.Filter{OwnerID: id.UserID})
	if err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}
	return out, nil
}

// ToggleAvailableNow flips the caller's listing between available and not.
// The write is not retried; a rejected write is returned as is.
func (s *ListingService) ToggleAvailableNow(ctx context.Context, id models.Identity, listingID string) (*models.Listing, error) {
	l, err := s.ownedListing(ctx, id, listingID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	change := presentation.ToggleAvailableNow(*l, now, s.availableWindow)

	updated, err := s.repos.Listings().UpdateAvailability(ctx, l.ID, change, now)
	if err != nil {
		return nil, fmt.Errorf("update availability: %w", err)
	}

	s.logger.Info(ctx, "availability toggled", "listing", l.ID, "available_now", change.AvailableNow)
	return updated, nil
}

func (s *ListingService) ownedListing(ctx context.Context, id models.Identity, listingID string) (*models.Listing, error) {
	return ownedListing(ctx, s.repos.Listings(), id, listingID)
}

func ownedListing(ctx context.Context, repo listings.Repository, id models.Identity, listingID string) (*models.Listing, error) {
	if id.UserID == "" {
		return nil, common.ErrorUnauthorized
	}
	l, err := repo.GetByID(ctx, listingID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("load listing: %w", err)
	}
	if l.UserID != id.UserID {
		return nil, common.ErrorForbidden
	}
	return l, nil
}
