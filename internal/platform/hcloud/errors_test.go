package hcloud

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		unauthorized bool
		rateLimited  bool
	}{
		{name: "nil error", err: nil},
		{name: "generic error", err: errors.New("something went wrong")},
		{
			name:         "unauthorized",
			err:          hcloud.Error{Code: hcloud.ErrorCodeUnauthorized, Message: "unable to authenticate"},
			unauthorized: true,
		},
		{
			name:         "forbidden",
			err:          hcloud.Error{Code: hcloud.ErrorCodeForbidden, Message: "read only token"},
			unauthorized: true,
		},
		{
			name:        "rate limited",
			err:         hcloud.Error{Code: hcloud.ErrorCodeRateLimitExceeded, Message: "limit reached"},
			rateLimited: true,
		},
		{
			name:        "wrapped rate limit",
			err:         fmt.Errorf("listing: %w", hcloud.Error{Code: hcloud.ErrorCodeRateLimitExceeded}),
			rateLimited: true,
		},
		{
			name: "not found",
			err:  hcloud.Error{Code: hcloud.ErrorCodeNotFound, Message: "not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err))
			assert.Equal(t, tt.rateLimited, IsRateLimited(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	apiErr := hcloud.Error{Code: hcloud.ErrorCodeUnauthorized, Message: "unable to authenticate"}
	err := classify(apiErr)
	assert.Contains(t, err.Error(), "HCLOUD_TOKEN")
	assert.True(t, IsUnauthorized(err))

	err = classify(hcloud.Error{Code: hcloud.ErrorCodeRateLimitExceeded})
	assert.Contains(t, err.Error(), "rate limit")

	err = classify(errors.New("connection reset"))
	assert.Equal(t, "failed to list servers: connection reset", err.Error())
}
