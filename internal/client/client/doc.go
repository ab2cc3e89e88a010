// Package client is the client side of the listings API.
//
// The Client interface is what the CLI and the TUI depend on. GRPCClient
// implements it over the generated ListingsServiceClient: an interceptor
// attaches the access token to every call, and status codes are mapped to
// the sentinel errors below so callers can use errors.Is.
package client
