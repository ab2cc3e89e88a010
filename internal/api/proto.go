package api

import (
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
	pb "github.com/dmitrijs2005/unity/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestamp maps the zero time to an unset field.
func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListingToProto converts l in its wire form (see WireListing).
func ListingToProto(l models.Listing) *pb.Listing {
	l = WireListing(l)
	out := &pb.Listing{
		Id:          l.ID,
		UserId:      l.UserID,
		Title:       l.Title,
		Description: l.Description,
		Location:    l.Location,
		Category:    l.Category,
		Images:      l.Images,
		ContactInfo: &pb.ContactInfo{
			Phone:   deref(l.ContactInfo.Phone),
			Email:   deref(l.ContactInfo.Email),
			Website: deref(l.ContactInfo.Website),
		},
		IsActive:     l.IsActive,
		AvailableNow: l.AvailableNow,
		CreatedAt:    timestamp(l.CreatedAt),
		UpdatedAt:    timestamp(l.UpdatedAt),
	}
	if l.AvailableUntil != nil {
		out.AvailableUntil = timestamppb.New(*l.AvailableUntil)
	}
	return out
}

func ListingFromProto(in *pb.Listing) models.Listing {
	c := in.GetContactInfo()
	l := models.Listing{
		ID:          in.GetId(),
		UserID:      in.GetUserId(),
		Title:       in.GetTitle(),
		Description: in.GetDescription(),
		Location:    in.GetLocation(),
		Category:    in.GetCategory(),
		Images:      in.GetImages(),
		ContactInfo: models.ContactInfo{
			Phone:   optional(c.GetPhone()),
			Email:   optional(c.GetEmail()),
			Website: optional(c.GetWebsite()),
		},
		IsActive:     in.GetIsActive(),
		AvailableNow: in.GetAvailableNow(),
		CreatedAt:    fromTimestamp(in.GetCreatedAt()),
		UpdatedAt:    fromTimestamp(in.GetUpdatedAt()),
	}
	if ts := in.GetAvailableUntil(); ts != nil && l.AvailableNow {
		t := ts.AsTime()
		l.AvailableUntil = &t
	}
	return l
}

func ListingsToProto(in []*models.Listing) []*pb.Listing {
	out := make([]*pb.Listing, 0, len(in))
	for _, l := range in {
		if l != nil {
			out = append(out, ListingToProto(*l))
		}
	}
	return out
}

func ListingsFromProto(in []*pb.Listing) []models.Listing {
	out := make([]models.Listing, len(in))
	for i, l := range in {
		out[i] = ListingFromProto(l)
	}
	return out
}

func CardToProto(c presentation.Card) *pb.Card {
	d := c.Decoration
	kinds := c.Kinds.Kinds()
	upgrades := make([]string, len(kinds))
	for i, k := range kinds {
		upgrades[i] = string(k)
	}
	return &pb.Card{
		Listing:  ListingToProto(c.Listing),
		Upgrades: upgrades,
		Decoration: &pb.Decoration{
			Highlighted:          d.Highlighted,
			Sticky:               d.Sticky,
			AvailableNowBadge:    d.AvailableNowBadge,
			AvailableRemainingMs: durationMs(d.AvailableRemaining),
			AvailabilityStale:    d.AvailabilityStale,
			RotationEnabled:      d.RotationEnabled,
			RotationIntervalMs:   durationMs(d.RotationInterval),
			ImageCount:           int32(d.ImageCount),
		},
		DisplayImageUrl: c.DisplayImageURL,
	}
}

// CardFromProto rebuilds the engine card on the client side.
func CardFromProto(in *pb.Card) presentation.Card {
	kinds := presentation.KindSet{}
	for _, k := range in.GetUpgrades() {
		kinds[models.UpgradeKind(k)] = struct{}{}
	}
	d := in.GetDecoration()
	return presentation.Card{
		Listing: ListingFromProto(in.GetListing()),
		Kinds:   kinds,
		Decoration: presentation.Decoration{
			Highlighted:        d.GetHighlighted(),
			Sticky:             d.GetSticky(),
			AvailableNowBadge:  d.GetAvailableNowBadge(),
			AvailableRemaining: time.Duration(d.GetAvailableRemainingMs()) * time.Millisecond,
			AvailabilityStale:  d.GetAvailabilityStale(),
			RotationEnabled:    d.GetRotationEnabled(),
			RotationInterval:   time.Duration(d.GetRotationIntervalMs()) * time.Millisecond,
			ImageCount:         int(d.GetImageCount()),
		},
		DisplayImageURL: in.GetDisplayImageUrl(),
	}
}

func CardsToProto(cards []presentation.Card) []*pb.Card {
	out := make([]*pb.Card, len(cards))
	for i, c := range cards {
		out[i] = CardToProto(c)
	}
	return out
}

func CardsFromProto(cards []*pb.Card) []presentation.Card {
	out := make([]presentation.Card, len(cards))
	for i, c := range cards {
		out[i] = CardFromProto(c)
	}
	return out
}

func OptionsToProto(in []models.UpgradeOption) []*pb.UpgradeOption {
	out := make([]*pb.UpgradeOption, len(in))
	for i, o := range in {
		out[i] = &pb.UpgradeOption{
			UpgradeType:  string(o.Kind),
			Name:         o.Name,
			Description:  o.Description,
			DurationDays: int32(o.DurationDays),
		}
	}
	return out
}

func OptionsFromProto(in []*pb.UpgradeOption) []models.UpgradeOption {
	out := make([]models.UpgradeOption, len(in))
	for i, o := range in {
		out[i] = models.UpgradeOption{
			Kind:         models.UpgradeKind(o.GetUpgradeType()),
			Name:         o.GetName(),
			Description:  o.GetDescription(),
			DurationDays: int(o.GetDurationDays()),
		}
	}
	return out
}

func UpgradeToProto(u models.Upgrade) *pb.Upgrade {
	return &pb.Upgrade{
		Id:          u.ID,
		ListingId:   u.ListingID,
		UpgradeType: string(u.Kind),
		ExpiresAt:   timestamp(u.ExpiresAt),
		IsActive:    u.IsActive,
		CreatedAt:   timestamp(u.CreatedAt),
	}
}

func UpgradeFromProto(in *pb.Upgrade) models.Upgrade {
	return models.Upgrade{
		ID:        in.GetId(),
		ListingID: in.GetListingId(),
		Kind:      models.UpgradeKind(in.GetUpgradeType()),
		ExpiresAt: fromTimestamp(in.GetExpiresAt()),
		IsActive:  in.GetIsActive(),
		CreatedAt: fromTimestamp(in.GetCreatedAt()),
	}
}

func UpgradesToProto(in []*models.Upgrade) []*pb.Upgrade {
	out := make([]*pb.Upgrade, 0, len(in))
	for _, u := range in {
		if u != nil {
			out = append(out, UpgradeToProto(*u))
		}
	}
	return out
}

func UpgradesFromProto(in []*pb.Upgrade) []models.Upgrade {
	out := make([]models.Upgrade, len(in))
	for i, u := range in {
		out[i] = UpgradeFromProto(u)
	}
	return out
}

func PurchasesToProto(in []*models.UpgradePurchase) []*pb.UpgradePurchase {
	out := make([]*pb.UpgradePurchase, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, &pb.UpgradePurchase{
			Id:           p.ID,
			UserId:       p.UserID,
			ListingId:    p.ListingID,
			UpgradeType:  string(p.Kind),
			DurationDays: int32(p.DurationDays),
			CreatedAt:    timestamp(p.CreatedAt),
		})
	}
	return out
}

func PurchasesFromProto(in []*pb.UpgradePurchase) []models.UpgradePurchase {
	out := make([]models.UpgradePurchase, len(in))
	for i, p := range in {
		out[i] = models.UpgradePurchase{
			ID:           p.GetId(),
			UserID:       p.GetUserId(),
			ListingID:    p.GetListingId(),
			Kind:         models.UpgradeKind(p.GetUpgradeType()),
			DurationDays: int(p.GetDurationDays()),
			CreatedAt:    fromTimestamp(p.GetCreatedAt()),
		}
	}
	return out
}

func BrowseRequestToProto(r *BrowseRequest) *pb.BrowseRequest {
	return &pb.BrowseRequest{
		Location:      r.Location,
		Category:      r.Category,
		AvailableOnly: r.AvailableOnly,
		Search:        r.Search,
	}
}

func CreateListingRequestToProto(r *CreateListingRequest) *pb.CreateListingRequest {
	return &pb.CreateListingRequest{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Category:    r.Category,
		Images:      r.Images,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     r.Website,
	}
}
