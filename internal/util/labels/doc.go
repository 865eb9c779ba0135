// Package labels builds Hetzner Cloud label selectors.
//
// Selectors restrict which servers are listed, for example only those
// labelled role=gpu. Keys are sorted so the same map always yields the
// same selector string.
package labels
