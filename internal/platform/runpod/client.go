package runpod

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imamik/podssh/internal/inventory"
)

// DefaultEndpoint is the public RunPod GraphQL endpoint.
const DefaultEndpoint = "https://api.runpod.io/graphql"

const podsQuery = `query Pods {
  myself {
    pods {
      id
      name
      runtime {
        ports {
          ip
          isIpPublic
          privatePort
          publicPort
          type
        }
      }
    }
  }
}`

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

// Client lists pods through the RunPod API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the GraphQL endpoint.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Client with optional configuration.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  "podssh",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type podsResponse struct {
	Data *struct {
		Myself *struct {
			Pods []pod `json:"pods"`
		} `json:"myself"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type pod struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Runtime *podRuntime `json:"runtime"`
}

type podRuntime struct {
	Ports []podPort `json:"ports"`
}

type podPort struct {
	IP          string `json:"ip"`
	IsIPPublic  bool   `json:"isIpPublic"`
	PrivatePort int    `json:"privatePort"`
	PublicPort  int    `json:"publicPort"`
	Type        string `json:"type"`
}

// ListInstances returns every pod of the account.
func (c *Client) ListInstances(ctx context.Context) ([]inventory.Instance, error) {
	body, err := json.Marshal(graphQLRequest{Query: podsQuery})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("runpod request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("runpod API returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var decoded podsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode runpod response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		msgs := make([]string, 0, len(decoded.Errors))
		for _, e := range decoded.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("runpod API error: %s", strings.Join(msgs, "; "))
	}

	if decoded.Data == nil || decoded.Data.Myself == nil {
		return nil, fmt.Errorf("runpod response has no account data")
	}

	instances := make([]inventory.Instance, 0, len(decoded.Data.Myself.Pods))
	for _, p := range decoded.Data.Myself.Pods {
		instances = append(instances, p.toInstance())
	}
	return instances, nil
}

func (p pod) toInstance() inventory.Instance {
	inst := inventory.Instance{
		ID:          p.ID,
		DisplayName: p.Name,
	}
	if p.Runtime == nil {
		return inst
	}

	inst.Runtime = &inventory.Runtime{}
	if p.Runtime.Ports == nil {
		return inst
	}

	inst.Runtime.Ports = make([]inventory.EndpointMapping, 0, len(p.Runtime.Ports))
	for _, port := range p.Runtime.Ports {
		inst.Runtime.Ports = append(inst.Runtime.Ports, inventory.EndpointMapping{
			ContainerPort: port.PrivatePort,
			HostAddress:   port.IP,
			HostPort:      port.PublicPort,
			Public:        port.IsIPPublic,
			Protocol:      port.Type,
		})
	}
	return inst
}
