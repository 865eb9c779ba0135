package hcloud

import (
	"errors"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// classify adds a readable explanation to well-known API errors while
// keeping the original error in the chain.
func classify(err error) error {
	switch {
	case IsUnauthorized(err):
		return fmt.Errorf("hcloud token rejected (check HCLOUD_TOKEN): %w", err)
	case IsRateLimited(err):
		return fmt.Errorf("hcloud rate limit exceeded, try again later: %w", err)
	default:
		return fmt.Errorf("failed to list servers: %w", err)
	}
}

// isHCloudErrorCode checks if the error is an hcloud API error with one of the given codes.
func isHCloudErrorCode(err error, codes ...hcloud.ErrorCode) bool {
	if err == nil {
		return false
	}

	var hcloudErr hcloud.Error
	if errors.As(err, &hcloudErr) {
		for _, code := range codes {
			if hcloudErr.Code == code {
				return true
			}
		}
	}
	return false
}

// IsUnauthorized checks if an error indicates an invalid or missing token.
func IsUnauthorized(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeUnauthorized, hcloud.ErrorCodeForbidden)
}

// IsRateLimited checks if an error indicates rate limiting.
func IsRateLimited(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeRateLimitExceeded)
}
