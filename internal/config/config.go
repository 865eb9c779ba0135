package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imamik/podssh/internal/sshconfig"
	"github.com/imamik/podssh/internal/util/fileutil"
)

// Supported inventory providers.
const (
	ProviderRunPod = "runpod"
	ProviderHCloud = "hcloud"
)

// Defaults applied when the settings file leaves a field empty.
const (
	DefaultUser           = "root"
	DefaultIdentityFile   = "~/.ssh/id_ed25519"
	DefaultSSHConfigDir   = "~/.ssh/config.d"
	DefaultKeysOutputFile = "authorized_keys.new"
)

// Config is the podssh settings file.
type Config struct {
	Provider string     `yaml:"provider"`
	SSH      SSHConfig  `yaml:"ssh"`
	Keys     KeysConfig `yaml:"keys,omitempty"`
	HCloud   HCloud     `yaml:"hcloud,omitempty"`
}

// SSHConfig controls the generated host blocks and where they are written.
type SSHConfig struct {
	User         string `yaml:"user"`
	IdentityFile string `yaml:"identity_file"`
	ConfigDir    string `yaml:"config_dir"`
	// ConfigFile is the file name inside ConfigDir. Defaults to the
	// provider name.
	ConfigFile string `yaml:"config_file,omitempty"`
}

// KeysConfig controls public key extraction.
type KeysConfig struct {
	Output   string   `yaml:"output,omitempty"`
	KeyTypes []string `yaml:"key_types,omitempty"`
}

// HCloud holds settings only used by the hcloud provider.
type HCloud struct {
	// Labels restricts the listing to servers carrying these labels. An
	// empty value only requires the key to be present.
	Labels map[string]string `yaml:"labels,omitempty"`
}

// Default returns the settings used when no settings file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderRunPod
	}
	if c.SSH.User == "" {
		c.SSH.User = DefaultUser
	}
	if c.SSH.IdentityFile == "" {
		c.SSH.IdentityFile = DefaultIdentityFile
	}
	if c.SSH.ConfigDir == "" {
		c.SSH.ConfigDir = DefaultSSHConfigDir
	}
	if c.SSH.ConfigFile == "" {
		c.SSH.ConfigFile = c.Provider
	}
	c.Keys.ApplyDefaults()
}

// DefaultKeys returns the keys settings used when no settings file exists.
func DefaultKeys() *KeysConfig {
	keys := &KeysConfig{}
	keys.ApplyDefaults()
	return keys
}

// ApplyDefaults fills empty key settings with their default values.
func (k *KeysConfig) ApplyDefaults() {
	if k.Output == "" {
		k.Output = DefaultKeysOutputFile
	}
}

// Validate checks the key settings. An empty KeyTypes list means the
// built-in defaults.
func (k *KeysConfig) Validate() error {
	for _, t := range k.KeyTypes {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("keys.key_types must not contain empty entries")
		}
	}
	return nil
}

// Validate checks the settings for errors.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderRunPod, ProviderHCloud:
	default:
		return fmt.Errorf("unsupported provider %q (expected %s or %s)", c.Provider, ProviderRunPod, ProviderHCloud)
	}
	if c.SSH.User == "" {
		return fmt.Errorf("ssh.user is required")
	}
	if c.SSH.IdentityFile == "" {
		return fmt.Errorf("ssh.identity_file is required")
	}
	if c.SSH.ConfigDir == "" {
		return fmt.Errorf("ssh.config_dir is required")
	}
	if c.SSH.ConfigFile == "" || filepath.Base(c.SSH.ConfigFile) != c.SSH.ConfigFile {
		return fmt.Errorf("ssh.config_file must be a plain file name, got %q", c.SSH.ConfigFile)
	}
	return c.Keys.Validate()
}

// Template returns the fixed fields applied to every host block.
// IdentityFile is kept as written so the generated config stays portable.
func (c *Config) Template() sshconfig.Template {
	return sshconfig.Template{
		User:         c.SSH.User,
		IdentityFile: c.SSH.IdentityFile,
	}
}

// ConfigDirPath returns ConfigDir with "~" expanded.
func (c *Config) ConfigDirPath() (string, error) {
	return fileutil.ExpandHome(c.SSH.ConfigDir)
}

// ConfigFilePath returns the absolute path of the managed config file.
func (c *Config) ConfigFilePath() (string, error) {
	dir, err := c.ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.SSH.ConfigFile), nil
}

// IdentityFilePath returns IdentityFile with "~" expanded.
func (c *Config) IdentityFilePath() (string, error) {
	return fileutil.ExpandHome(c.SSH.IdentityFile)
}

// DefaultPath returns the default settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "podssh", "config.yaml"), nil
}
