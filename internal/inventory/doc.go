// Package inventory models the remote instances reported by a cloud
// provider and derives SSH endpoints from them.
//
// An Instance is what an inventory Source returns: an ID, a display name
// and, when the instance is running, a Runtime listing its port mappings.
// Extract turns one Instance into zero or more Endpoints by keeping only
// the mappings whose container port is 22.
//
// Extraction is pure. A malformed record yields an *ExtractError and no
// endpoints, so callers can isolate the failure and keep going with the
// rest of the inventory.
package inventory
