package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	Provider string

	// SSH host block template
	User         string
	IdentityFile string

	// Managed config location
	ConfigDir  string
	ConfigFile string

	// Key extraction
	KeysOutput string
	KeyTypes   string // comma-separated
}

// RunWizard runs the interactive settings wizard. Initial values come from
// defaults so pressing enter on every question yields the default settings.
func RunWizard(ctx context.Context, defaults Result) (*Result, error) {
	result := defaults

	if err := runProviderGroup(ctx, &result); err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}

	if err := runSSHGroup(ctx, &result); err != nil {
		return nil, fmt.Errorf("ssh: %w", err)
	}

	if err := runKeysGroup(ctx, &result); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}

	return &result, nil
}
