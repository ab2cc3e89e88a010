// Package presentation turns listings and their upgrades into an ordered,
// decorated view model for the browse grid.
//
// Every function here is pure and takes the reference time from the caller.
// The one stateful piece is image rotation: Rotator owns a recurring ticker
// per rendered card and Rotations owns the rotators of a whole view.
//
// Pipeline:
//
//	kinds := ActiveKindsByListing(upgrades, now)   // upgrade resolver
//	ordered, _ := OrderForDisplay(listings, StickyIDs(kinds))
//	card := Decorate(*ordered[i], kinds[id], now)  // decorator
//
// BuildCards runs the three stages in one call.
package presentation
