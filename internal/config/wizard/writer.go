package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/podssh/internal/config"
	"github.com/imamik/podssh/internal/util/fileutil"
)

// Function variables for dependency injection in tests.
var (
	confirmOverwrite = defaultConfirmOverwrite
	now              = time.Now
)

// WriteConfig writes the settings to a YAML file with a descriptive header.
// An existing file is only replaced when force is set or the user confirms.
func WriteConfig(cfg *config.Config, outputPath string, force bool) error {
	if FileExists(outputPath) && !force {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return ErrOverwriteDeclined
		}
	}

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(cfg))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader returns the comment block written above the settings.
func generateHeader(cfg *config.Config) string {
	credential := "RUNPOD_API_KEY"
	if cfg.Provider == config.ProviderHCloud {
		credential = "HCLOUD_TOKEN"
	}
	return fmt.Sprintf(`# podssh settings
# Generated by: podssh init
# Generated at: %s
#
# Required environment variable:
#   %s - API credential for the %s provider
#
# Usage:
#   podssh sync
#   echo "Include %s/*" >> ~/.ssh/config
`, now().Format(time.RFC3339), credential, cfg.Provider, cfg.SSH.ConfigDir)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
