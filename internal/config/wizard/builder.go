package wizard

import (
	"strings"

	"github.com/imamik/podssh/internal/authkeys"
	"github.com/imamik/podssh/internal/config"
)

// DefaultResult returns the wizard answers matching config.Default.
func DefaultResult() Result {
	cfg := config.Default()
	return Result{
		Provider:     cfg.Provider,
		User:         cfg.SSH.User,
		IdentityFile: cfg.SSH.IdentityFile,
		ConfigDir:    cfg.SSH.ConfigDir,
		ConfigFile:   cfg.SSH.ConfigFile,
		KeysOutput:   cfg.Keys.Output,
		KeyTypes:     strings.Join(authkeys.DefaultKeyTypes, ", "),
	}
}

// BuildConfig converts wizard answers into settings. Key types equal to
// the built-in list are left unset so the file keeps following defaults.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		Provider: result.Provider,
		SSH: config.SSHConfig{
			User:         strings.TrimSpace(result.User),
			IdentityFile: strings.TrimSpace(result.IdentityFile),
			ConfigDir:    strings.TrimSpace(result.ConfigDir),
			ConfigFile:   strings.TrimSpace(result.ConfigFile),
		},
		Keys: config.KeysConfig{
			Output: strings.TrimSpace(result.KeysOutput),
		},
	}

	types := parseList(result.KeyTypes)
	if !equalStrings(types, authkeys.DefaultKeyTypes) {
		cfg.Keys.KeyTypes = types
	}

	cfg.ApplyDefaults()
	return cfg
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
