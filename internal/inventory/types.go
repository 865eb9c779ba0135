package inventory

import "context"

// SSHContainerPort is the container-side port that marks a mapping as an
// SSH endpoint.
const SSHContainerPort = 22

// Instance is one remote compute unit as reported by a Source.
type Instance struct {
	ID          string
	DisplayName string

	// Runtime is nil when the provider did not report a runtime for the
	// instance, typically because it is stopped or still starting.
	Runtime *Runtime
}

// Runtime holds the live network state of an instance.
type Runtime struct {
	// Ports is nil when the provider omitted the port list entirely.
	// An empty, non-nil slice means the instance exposes nothing.
	Ports []EndpointMapping
}

// EndpointMapping maps a container port to an address and port reachable
// from outside.
type EndpointMapping struct {
	ContainerPort int
	HostAddress   string
	HostPort      int
	// Public reports whether HostAddress is reachable from the internet.
	Public bool
	// Protocol is the provider's transport label, such as "tcp" or "http".
	Protocol string
}

// Endpoint is an SSH target derived from an instance.
type Endpoint struct {
	InstanceID string `json:"instanceId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Port       int    `json:"port"`
	Public     bool   `json:"public"`
	Protocol   string `json:"protocol,omitempty"`
}

// Source lists the instances currently known to a provider.
type Source interface {
	ListInstances(ctx context.Context) ([]Instance, error)
}
