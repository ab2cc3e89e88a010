package api

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/presentation"
	pb "github.com/dmitrijs2005/unity/internal/proto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

var protoNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestCardProto_RoundTrip(t *testing.T) {
	until := protoNow.Add(2 * time.Hour)
	card := presentation.Card{
		Listing: models.Listing{
			ID:             "l1",
			UserID:         "u1",
			Title:          "Jazz trio",
			Images:         []string{"a", "b"},
			ContactInfo:    models.ContactInfo{Email: ptr("me@example.com")},
			IsActive:       true,
			AvailableNow:   true,
			AvailableUntil: &until,
			CreatedAt:      protoNow,
			UpdatedAt:      protoNow,
		},
		Kinds: presentation.KindSet{models.UpgradeHighlight: {}, models.UpgradeImageRotation: {}},
		Decoration: presentation.Decoration{
			Highlighted:        true,
			AvailableNowBadge:  true,
			AvailableRemaining: 2 * time.Hour,
			RotationEnabled:    true,
			RotationInterval:   presentation.RotationInterval,
			ImageCount:         2,
		},
		DisplayImageURL: "a",
	}

	// through the wire bytes, not just the structs
	data, err := proto.Marshal(CardToProto(card))
	require.NoError(t, err)
	var decoded pb.Card
	require.NoError(t, proto.Unmarshal(data, &decoded))

	assert.Equal(t, []string{"image_rotation", "highlight"}, decoded.GetUpgrades())
	assert.Equal(t, int64(3000), decoded.GetDecoration().GetRotationIntervalMs())

	if diff := cmp.Diff(card, CardFromProto(&decoded)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestListingToProto_StaleAvailability(t *testing.T) {
	past := protoNow.Add(-time.Hour)
	l := models.Listing{ID: "l1", AvailableNow: false, AvailableUntil: &past}

	got := ListingToProto(l)
	assert.False(t, got.GetAvailableNow())
	assert.Nil(t, got.GetAvailableUntil())
	assert.Nil(t, got.GetCreatedAt())
}

func TestListingFromProto_IgnoresUntilWithoutFlag(t *testing.T) {
	in := ListingToProto(models.Listing{ID: "l1", AvailableNow: true, AvailableUntil: ptr(protoNow)})
	in.AvailableNow = false

	assert.Nil(t, ListingFromProto(in).AvailableUntil)
}

func TestListingFromProto_Nil(t *testing.T) {
	l := ListingFromProto(nil)
	assert.Equal(t, "", l.ID)
	assert.Nil(t, l.ContactInfo.Phone)
	assert.True(t, l.CreatedAt.IsZero())
}

func TestListingsToProto_SkipsNil(t *testing.T) {
	got := ListingsToProto([]*models.Listing{{ID: "a"}, nil, {ID: "b"}})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].GetId())
	assert.Equal(t, []models.Listing{{ID: "a"}, {ID: "b"}}, ListingsFromProto(got))
}

func TestOptionsProto_RoundTrip(t *testing.T) {
	catalog := models.UpgradeCatalog()
	assert.Equal(t, catalog, OptionsFromProto(OptionsToProto(catalog)))
}

func TestUpgradesProto_RoundTrip(t *testing.T) {
	u := &models.Upgrade{
		ID:        "up1",
		ListingID: "l1",
		Kind:      models.UpgradeSticky,
		ExpiresAt: protoNow.AddDate(0, 0, 7),
		IsActive:  true,
		CreatedAt: protoNow,
	}

	got := UpgradesFromProto(UpgradesToProto([]*models.Upgrade{u, nil}))
	if diff := cmp.Diff([]models.Upgrade{*u}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPurchasesProto_RoundTrip(t *testing.T) {
	p := &models.UpgradePurchase{
		ID:           "p1",
		UserID:       "u1",
		ListingID:    "l1",
		Kind:         models.UpgradeHighlight,
		DurationDays: 30,
		CreatedAt:    protoNow,
	}

	got := PurchasesFromProto(PurchasesToProto([]*models.UpgradePurchase{nil, p}))
	if diff := cmp.Diff([]models.UpgradePurchase{*p}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestsToProto(t *testing.T) {
	b := BrowseRequestToProto(&BrowseRequest{Location: "Riga", AvailableOnly: true, Search: "jazz"})
	assert.Equal(t, "Riga", b.GetLocation())
	assert.True(t, b.GetAvailableOnly())
	assert.Equal(t, "jazz", b.GetSearch())

	c := CreateListingRequestToProto(&CreateListingRequest{Title: "Show", Images: []string{"a"}, Website: "w"})
	assert.Equal(t, "Show", c.GetTitle())
	assert.Equal(t, []string{"a"}, c.GetImages())
	assert.Equal(t, "w", c.GetWebsite())
}
