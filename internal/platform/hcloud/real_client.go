package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/podssh/internal/inventory"
)

// RealClient implements inventory.Source using the Hetzner Cloud API.
type RealClient struct {
	client        *hcloud.Client
	labelSelector string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHCloudClient sets a custom hcloud client (useful for testing).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *RealClient) {
		c.client = hc
	}
}

// WithLabelSelector restricts the listing to servers matching selector.
func WithLabelSelector(selector string) ClientOption {
	return func(c *RealClient) {
		c.labelSelector = selector
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: hcloud.NewClient(hcloud.WithToken(token), hcloud.WithApplication("podssh", "")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListInstances returns every server visible to the token.
func (c *RealClient) ListInstances(ctx context.Context) ([]inventory.Instance, error) {
	servers, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
		ListOpts: hcloud.ListOpts{LabelSelector: c.labelSelector},
	})
	if err != nil {
		return nil, classify(err)
	}

	instances := make([]inventory.Instance, 0, len(servers))
	for _, srv := range servers {
		instances = append(instances, toInstance(srv))
	}
	return instances, nil
}

func toInstance(srv *hcloud.Server) inventory.Instance {
	inst := inventory.Instance{
		ID:          fmt.Sprintf("%d", srv.ID),
		DisplayName: srv.Name,
	}
	if srv.Status != hcloud.ServerStatusRunning {
		return inst
	}

	inst.Runtime = &inventory.Runtime{Ports: []inventory.EndpointMapping{}}
	ip := srv.PublicNet.IPv4.IP
	if ip == nil || ip.IsUnspecified() {
		return inst
	}

	inst.Runtime.Ports = append(inst.Runtime.Ports, inventory.EndpointMapping{
		ContainerPort: inventory.SSHContainerPort,
		HostAddress:   ip.String(),
		HostPort:      inventory.SSHContainerPort,
		Public:        true,
		Protocol:      "tcp",
	})
	return inst
}
