package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpgradeKind(t *testing.T) {
	for _, k := range UpgradeKinds {
		got, err := ParseUpgradeKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseUpgradeKind("gold_frame")
	assert.Error(t, err)
}

func TestListing_EffectiveAvailableUntil(t *testing.T) {
	until := time.Now().Add(time.Hour)

	l := Listing{AvailableNow: true, AvailableUntil: &until}
	assert.Equal(t, &until, l.EffectiveAvailableUntil())

	l.AvailableNow = false
	assert.Nil(t, l.EffectiveAvailableUntil())
}

func TestUpgradeCatalog(t *testing.T) {
	c := UpgradeCatalog()
	require.Len(t, c, len(UpgradeKinds))

	c[0].DurationDays = 999
	o, err := LookupUpgradeOption(UpgradeImageRotation)
	require.NoError(t, err)
	assert.Equal(t, 30, o.DurationDays, "catalog must not be mutable through the copy")

	sticky, err := LookupUpgradeOption(UpgradeSticky)
	require.NoError(t, err)
	assert.Equal(t, 7, sticky.DurationDays)

	_, err = LookupUpgradeOption("nope")
	assert.Error(t, err)
}

func TestIdentity_IsEntertainer(t *testing.T) {
	assert.True(t, Identity{UserType: UserTypeEntertainer}.IsEntertainer())
	assert.False(t, Identity{UserType: UserTypeNonEntertainer}.IsEntertainer())
	assert.False(t, Identity{}.IsEntertainer())
}
