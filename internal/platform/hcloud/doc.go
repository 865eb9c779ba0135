// Package hcloud lists Hetzner Cloud servers as inventory instances.
//
// Every running server with a public IPv4 address is exposed as a single
// SSH endpoint on port 22. Servers that are not running have no runtime
// and are reported as failed records by the extractor.
//
// API errors are classified so the CLI can print a clearer message for an
// invalid token or an exhausted rate limit:
//
//	instances, err := hcloud.NewRealClient(token).ListInstances(ctx)
//	if hcloud.IsUnauthorized(err) {
//	    // token rejected
//	}
package hcloud
