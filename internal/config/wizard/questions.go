package wizard

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/podssh/internal/config"
)

// ProviderOptions lists the selectable inventory providers.
var ProviderOptions = []huh.Option[string]{
	huh.NewOption("RunPod (RUNPOD_API_KEY)", config.ProviderRunPod),
	huh.NewOption("Hetzner Cloud (HCLOUD_TOKEN)", config.ProviderHCloud),
}

// runProviderGroup prompts for the inventory provider.
func runProviderGroup(ctx context.Context, result *Result) error {
	previous := result.Provider

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Provider").
				Description("Where your instances are listed from").
				Options(ProviderOptions...).
				Value(&result.Provider),
		).Title("Inventory"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	// The config file is named after the provider unless the user chose
	// something else earlier.
	if result.ConfigFile == "" || result.ConfigFile == previous {
		result.ConfigFile = result.Provider
	}
	return nil
}

// runSSHGroup prompts for the host block template and output location.
func runSSHGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SSH User").
				Description("User written into every host block").
				Placeholder(config.DefaultUser).
				Value(&result.User).
				Validate(validateUser),
			huh.NewInput().
				Title("Identity File").
				Description("Private key used for every host").
				Placeholder(config.DefaultIdentityFile).
				Value(&result.IdentityFile).
				Validate(validatePath),
			huh.NewInput().
				Title("Config Directory").
				Description("Directory included from ~/.ssh/config").
				Placeholder(config.DefaultSSHConfigDir).
				Value(&result.ConfigDir).
				Validate(validatePath),
			huh.NewInput().
				Title("Config File").
				Description("File inside the config directory that podssh owns").
				Value(&result.ConfigFile).
				Validate(validateConfigFile),
		).Title("SSH Config"),
	).RunWithContext(ctx)
}

// runKeysGroup prompts for key extraction settings.
func runKeysGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Keys Output").
				Description("Default output file of podssh keys").
				Placeholder(config.DefaultKeysOutputFile).
				Value(&result.KeysOutput).
				Validate(validatePath),
			huh.NewInput().
				Title("Key Types").
				Description("Comma-separated key type prefixes to extract").
				Value(&result.KeyTypes).
				Validate(validateKeyTypes),
		).Title("Public Keys"),
	).RunWithContext(ctx)
}

func validateUser(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errUserRequired
	}
	if strings.ContainsAny(s, " \t") {
		return errUserInvalid
	}
	return nil
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errPathRequired
	}
	return nil
}

func validateConfigFile(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errPathRequired
	}
	if filepath.Base(s) != s || s == "." || s == ".." {
		return errConfigFileInvalid
	}
	return nil
}

func validateKeyTypes(s string) error {
	if len(parseList(s)) == 0 {
		return errKeyTypesRequired
	}
	return nil
}

// parseList splits a comma-separated list, dropping empty entries.
func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
