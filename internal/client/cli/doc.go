// Package cli is the command-line front end of the listings client.
//
// Commands:
//   - browse: the interactive grid (or a plain listing with --plain)
//   - options: the upgrade catalog
//   - mine, create, toggle, upgrade: manage the caller's listings
//   - login: store an access token for later calls
//
// NewRootCommand builds the cobra command tree; cmd/client executes it.
package cli
