package models

import "fmt"

// UpgradeOption describes one entry of the upgrade catalog.
type UpgradeOption struct {
	Kind         UpgradeKind `json:"type"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DurationDays int         `json:"duration_days"`
}

var upgradeCatalog = []UpgradeOption{
	{
		Kind:         UpgradeImageRotation,
		Name:         "Image Rotation",
		Description:  "Showcase multiple images in a rotating slideshow on your listing card",
		DurationDays: 30,
	},
	{
		Kind:         UpgradeHighlight,
		Name:         "Highlighted Listing",
		Description:  "Make your listing stand out with a special border and sparkle effect",
		DurationDays: 30,
	},
	{
		Kind:         UpgradeSticky,
		Name:         "Sticky Ad",
		Description:  "Pin your listing to the top of search results in your location category",
		DurationDays: 7,
	},
	{
		Kind:         UpgradeAvailableNowExtended,
		Name:         "Extended Available Now",
		Description:  `Keep your "Available Now" status active for 24 hours instead of 4`,
		DurationDays: 1,
	},
}

// UpgradeCatalog returns a copy of the purchasable options.
func UpgradeCatalog() []UpgradeOption {
	out := make([]UpgradeOption, len(upgradeCatalog))
	copy(out, upgradeCatalog)
	return out
}

// LookupUpgradeOption returns the catalog entry for kind.
func LookupUpgradeOption(kind UpgradeKind) (UpgradeOption, error) {
	for _, o := range upgradeCatalog {
		if o.Kind == kind {
			return o, nil
		}
	}
	return UpgradeOption{}, fmt.Errorf("no catalog entry for %q", kind)
}
