package presentation

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(ks ...models.UpgradeKind) KindSet {
	s := KindSet{}
	for _, k := range ks {
		s[k] = struct{}{}
	}
	return s
}

func TestDecorate_HighlightAndSticky(t *testing.T) {
	l := *listing("a", "1.jpg")
	l.AvailableNow = false

	d := Decorate(l, kinds(models.UpgradeHighlight, models.UpgradeSticky), refNow)

	assert.True(t, d.Highlighted)
	assert.True(t, d.Sticky)
	assert.False(t, d.AvailableNowBadge)
	assert.False(t, d.RotationEnabled)
	assert.Zero(t, d.RotationInterval)
}

func TestDecorate_Rotation(t *testing.T) {
	tests := []struct {
		name   string
		images []string
		kinds  KindSet
		want   bool
	}{
		{name: "two images with upgrade", images: []string{"1", "2"}, kinds: kinds(models.UpgradeImageRotation), want: true},
		{name: "one image with upgrade", images: []string{"1"}, kinds: kinds(models.UpgradeImageRotation), want: false},
		{name: "no images with upgrade", images: nil, kinds: kinds(models.UpgradeImageRotation), want: false},
		{name: "many images without upgrade", images: []string{"1", "2", "3"}, kinds: kinds(models.UpgradeHighlight), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decorate(*listing("a", tt.images...), tt.kinds, refNow)
			assert.Equal(t, tt.want, d.RotationEnabled)
			if tt.want {
				assert.Equal(t, 3*time.Second, d.RotationInterval)
			}
		})
	}
}

func TestDecorate_ZeroImagesFallsBackToPlaceholder(t *testing.T) {
	l := *listing("a")

	d := Decorate(l, kinds(models.UpgradeImageRotation, models.UpgradeHighlight, models.UpgradeSticky), refNow)
	assert.False(t, d.RotationEnabled)
	assert.Equal(t, 1, d.ImageCount)

	cards, err := BuildCards([]*models.Listing{&l}, []models.Upgrade{
		upgrade("a", models.UpgradeImageRotation, refNow.Add(time.Hour), true),
	}, refNow)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, PlaceholderImageURL, cards[0].DisplayImageURL)
	assert.NotEmpty(t, cards[0].DisplayImageURL)
	assert.False(t, cards[0].Decoration.RotationEnabled)
}

func TestDecorate_AvailableNow(t *testing.T) {
	until := refNow.Add(90 * time.Minute)
	past := refNow.Add(-time.Minute)

	t.Run("open window counts down", func(t *testing.T) {
		l := *listing("a")
		l.AvailableNow = true
		l.AvailableUntil = &until

		d := Decorate(l, nil, refNow)
		assert.True(t, d.AvailableNowBadge)
		assert.Equal(t, 90*time.Minute, d.AvailableRemaining)
		assert.False(t, d.AvailabilityStale)
	})

	t.Run("expired window keeps badge and reports staleness", func(t *testing.T) {
		l := *listing("a")
		l.AvailableNow = true
		l.AvailableUntil = &past

		d := Decorate(l, nil, refNow)
		assert.True(t, d.AvailableNowBadge)
		assert.True(t, d.AvailabilityStale)
		assert.Zero(t, d.AvailableRemaining)
	})

	t.Run("stored until ignored when flag is off", func(t *testing.T) {
		l := *listing("a")
		l.AvailableNow = false
		l.AvailableUntil = &past

		d := Decorate(l, nil, refNow)
		assert.False(t, d.AvailableNowBadge)
		assert.False(t, d.AvailabilityStale)
		assert.Zero(t, d.AvailableRemaining)
	})
}

func TestBuildCards(t *testing.T) {
	later := refNow.Add(time.Hour)
	ls := []*models.Listing{
		listing("A", "a1"),
		listing("B", "b1", "b2", "b3"),
		listing("C"),
		listing("D", "d1"),
	}
	ups := []models.Upgrade{
		upgrade("C", models.UpgradeSticky, later, true),
		upgrade("B", models.UpgradeImageRotation, later, true),
		upgrade("B", models.UpgradeHighlight, later, true),
		upgrade("D", models.UpgradeSticky, refNow.Add(-time.Hour), true),
	}

	cards, err := BuildCards(ls, ups, refNow)
	require.NoError(t, err)

	got := make([]string, 0, len(cards))
	for _, c := range cards {
		got = append(got, c.Listing.ID)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, got)

	assert.True(t, cards[0].Decoration.Sticky)
	assert.Equal(t, PlaceholderImageURL, cards[0].DisplayImageURL)

	b := cards[2]
	assert.True(t, b.Decoration.Highlighted)
	assert.True(t, b.Decoration.RotationEnabled)
	assert.Equal(t, 3, b.Decoration.ImageCount)
	assert.Equal(t, "b1", b.DisplayImageURL)
	assert.Equal(t, "b3", b.ImageAt(2))
	assert.Equal(t, "b1", b.ImageAt(3))

	assert.False(t, cards[3].Decoration.Sticky, "expired sticky must not apply")
}

func TestBuildCards_NilListing(t *testing.T) {
	_, err := BuildCards([]*models.Listing{nil}, nil, refNow)
	require.ErrorIs(t, err, ErrNilListing)
}
