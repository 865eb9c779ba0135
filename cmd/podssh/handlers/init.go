package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/podssh/internal/config"
	"github.com/imamik/podssh/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardRunWizard   = wizard.RunWizard
	wizardBuildConfig = wizard.BuildConfig
	wizardWriteConfig = wizard.WriteConfig
	defaultConfigPath = config.DefaultPath
)

// Init runs the settings wizard and writes the result to outputPath, or
// to the default settings location when outputPath is empty.
func Init(ctx context.Context, outputPath string, force bool) error {
	if outputPath == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return err
		}
		outputPath = p
	}

	printWelcome()

	result, err := wizardRunWizard(ctx, wizard.DefaultResult())
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizardBuildConfig(result)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := wizardWriteConfig(cfg, outputPath, force); err != nil {
		if errors.Is(err, wizard.ErrOverwriteDeclined) {
			fmt.Printf("Kept existing %s\n", outputPath)
			return nil
		}
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("podssh - SSH config for your cloud instances")
	fmt.Println("============================================")
	fmt.Println()
	fmt.Println("This wizard creates the podssh settings file.")
	fmt.Println("Press enter to accept a default.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	_, credential := (&config.Env{}).Credential(cfg.Provider)

	fmt.Println()
	fmt.Println("Settings saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Provider:      %s\n", cfg.Provider)
	fmt.Printf("  User:          %s\n", cfg.SSH.User)
	fmt.Printf("  Identity file: %s\n", cfg.SSH.IdentityFile)
	fmt.Printf("  Managed file:  %s/%s\n", cfg.SSH.ConfigDir, cfg.SSH.ConfigFile)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your API credential:")
	fmt.Printf("     export %s=<your-key>\n", credential)
	fmt.Println()
	fmt.Println("  2. Include the managed directory from ~/.ssh/config:")
	fmt.Printf("     Include %s/*\n", cfg.SSH.ConfigDir)
	fmt.Println()
	fmt.Println("  3. Sync your hosts:")
	fmt.Println("     podssh sync")
	fmt.Println()
}
