package handlers

import (
	"fmt"
	"os"

	"github.com/imamik/podssh/internal/authkeys"
	"github.com/imamik/podssh/internal/config"
)

// KeysOptions carries the flags of the keys command.
type KeysOptions struct {
	InputPath string
	// OutputPath overrides keys.output from the settings file when set.
	OutputPath string
	ConfigPath string
	Append     bool
	Strict     bool
}

// Factory function variables for keys - can be replaced in tests.
var (
	loadKeysConfig = config.LoadKeys
	readFile       = os.ReadFile
	writeKeys      = authkeys.WriteFile
	appendRawInput = authkeys.AppendRaw
)

// Keys extracts public key lines from a text file, prints them and writes
// them to the output file. With Append the whole input is appended raw
// after the keys are written. Only the keys section of the settings file
// is read.
func Keys(opts KeysOptions) error {
	keysCfg, err := loadKeysConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = keysCfg.Output
	}

	keyTypes := keysCfg.KeyTypes
	if len(keyTypes) == 0 {
		keyTypes = authkeys.DefaultKeyTypes
	}

	var extractorOpts []authkeys.Option
	if opts.Strict {
		extractorOpts = append(extractorOpts, authkeys.WithStrict())
	}
	extractor, err := authkeys.NewExtractor(keyTypes, extractorOpts...)
	if err != nil {
		return fmt.Errorf("invalid key types: %w", err)
	}

	raw, err := readFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	keys := extractor.Extract(string(raw))
	for _, k := range keys {
		fmt.Println(k.String())
	}

	if err := writeKeys(outputPath, keys); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d key(s) to %s\n", len(keys), outputPath)

	if opts.Append {
		fmt.Fprintf(os.Stderr, "Warning: appending the raw input to %s; this can re-add duplicates and non-key lines\n", outputPath)
		if err := appendRawInput(outputPath, raw); err != nil {
			return err
		}
	}

	return nil
}
