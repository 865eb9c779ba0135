package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/imamik/podssh/internal/config"
)

// saveAndRestoreFactories saves and restores all handler factory functions.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origLoadConfig := loadConfig
	origLoadEnv := loadEnv
	origRunPod := newRunPodSource
	origHCloud := newHCloudSource
	origLogger := newLogger
	origNow := now
	origLoadKeys := loadKeysConfig
	origReadFile := readFile
	origWriteKeys := writeKeys
	origAppend := appendRawInput
	origRunWizard := wizardRunWizard
	origBuildConfig := wizardBuildConfig
	origWriteConfig := wizardWriteConfig
	origDefaultPath := defaultConfigPath

	t.Cleanup(func() {
		loadConfig = origLoadConfig
		loadEnv = origLoadEnv
		newRunPodSource = origRunPod
		newHCloudSource = origHCloud
		newLogger = origLogger
		now = origNow
		loadKeysConfig = origLoadKeys
		readFile = origReadFile
		writeKeys = origWriteKeys
		appendRawInput = origAppend
		wizardRunWizard = origRunWizard
		wizardBuildConfig = origBuildConfig
		wizardWriteConfig = origWriteConfig
		defaultConfigPath = origDefaultPath
	})

	newLogger = func(int) logr.Logger { return logr.Discard() }
}

// testConfig returns settings pointing into a temporary directory with an
// existing identity file.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	identity := filepath.Join(dir, "id_ed25519")
	require.NoError(t, os.WriteFile(identity, []byte("key"), 0600))

	cfg := &config.Config{
		Provider: config.ProviderRunPod,
		SSH: config.SSHConfig{
			User:         "root",
			IdentityFile: identity,
			ConfigDir:    dir,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
