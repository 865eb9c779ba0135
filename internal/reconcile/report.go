package reconcile

import (
	"github.com/imamik/podssh/internal/inventory"
	"github.com/imamik/podssh/internal/sshconfig"
)

// Instance statuses reported per record.
const (
	StatusFound      = "found"
	StatusNoEndpoint = "no ssh endpoint"
	StatusFailed     = "failed"
)

// StatusReplaced marks an endpoint whose host name was taken over by a
// later endpoint, so it is absent from the generated config.
const StatusReplaced = "replaced"

// InstanceResult is the outcome of converting one instance record.
type InstanceResult struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Endpoints []inventory.Endpoint `json:"endpoints,omitempty"`
	Err       error                `json:"-"`
	Error     string               `json:"error,omitempty"`
}

// Status returns StatusFound, StatusNoEndpoint or StatusFailed.
func (r InstanceResult) Status() string {
	switch {
	case r.Err != nil:
		return StatusFailed
	case len(r.Endpoints) == 0:
		return StatusNoEndpoint
	default:
		return StatusFound
	}
}

// Report summarizes one run.
type Report struct {
	Provider      string                `json:"provider"`
	InstanceCount int                   `json:"instanceCount"`
	Instances     []InstanceResult      `json:"instances"`
	Collisions    []sshconfig.Collision `json:"collisions,omitempty"`
	Document      *sshconfig.Document   `json:"document"`
	Path          string                `json:"path"`
	DryRun        bool                  `json:"dryRun"`
	Written       bool                  `json:"written"`
}

// Failures returns the records that could not be converted.
func (r *Report) Failures() []InstanceResult {
	var failed []InstanceResult
	for _, res := range r.Instances {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Replaced reports, for every endpoint returned by Endpoints, whether a
// later endpoint with the same host name overwrote it.
func (r *Report) Replaced() []bool {
	all := r.Endpoints()
	last := make(map[string]int, len(all))
	for i, ep := range all {
		last[ep.Name] = i
	}
	replaced := make([]bool, len(all))
	for i, ep := range all {
		replaced[i] = last[ep.Name] != i
	}
	return replaced
}

// Endpoints returns every extracted endpoint in inventory order.
func (r *Report) Endpoints() []inventory.Endpoint {
	var all []inventory.Endpoint
	for _, res := range r.Instances {
		all = append(all, res.Endpoints...)
	}
	return all
}
