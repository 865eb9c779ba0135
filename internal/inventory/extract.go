package inventory

import (
	"fmt"
	"regexp"
)

// whitespaceRun matches the same characters as unicode.IsSpace.
var whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)

// NormalizeName turns a display name into an SSH host alias by replacing
// every whitespace run with a single underscore.
func NormalizeName(displayName string) string {
	return whitespaceRun.ReplaceAllString(displayName, "_")
}

// ExtractError reports a record that does not have the expected shape.
type ExtractError struct {
	InstanceID string
	Name       string
	Reason     string
}

func (e *ExtractError) Error() string {
	id := e.InstanceID
	if id == "" {
		id = "<no id>"
	}
	if e.Name == "" {
		return fmt.Sprintf("instance %s: %s", id, e.Reason)
	}
	return fmt.Sprintf("instance %s (%s): %s", id, e.Name, e.Reason)
}

// Extract derives the SSH endpoints of a single instance.
//
// Only mappings with ContainerPort == SSHContainerPort are kept. If the
// record is malformed, Extract returns an *ExtractError and no endpoints,
// even when some mappings were usable.
func Extract(inst Instance) ([]Endpoint, error) {
	name := NormalizeName(inst.DisplayName)
	fail := func(reason string) error {
		return &ExtractError{InstanceID: inst.ID, Name: name, Reason: reason}
	}

	if inst.DisplayName == "" {
		return nil, fail("missing display name")
	}
	if inst.Runtime == nil {
		return nil, fail("runtime not available (instance not running?)")
	}
	if inst.Runtime.Ports == nil {
		return nil, fail("runtime has no port list")
	}

	var endpoints []Endpoint
	for _, m := range inst.Runtime.Ports {
		if m.ContainerPort != SSHContainerPort {
			continue
		}
		if m.HostAddress == "" {
			return nil, fail("ssh port mapping has no host address")
		}
		if m.HostPort < 1 || m.HostPort > 65535 {
			return nil, fail(fmt.Sprintf("ssh port mapping has invalid host port %d", m.HostPort))
		}
		endpoints = append(endpoints, Endpoint{
			InstanceID: inst.ID,
			Name:       name,
			Address:    m.HostAddress,
			Port:       m.HostPort,
			Public:     m.Public,
			Protocol:   m.Protocol,
		})
	}
	return endpoints, nil
}
