package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/podssh/internal/config"
	"github.com/imamik/podssh/internal/inventory"
	"github.com/imamik/podssh/internal/logging"
	"github.com/imamik/podssh/internal/metrics"
	"github.com/imamik/podssh/internal/platform/hcloud"
	"github.com/imamik/podssh/internal/platform/runpod"
	"github.com/imamik/podssh/internal/reconcile"
	"github.com/imamik/podssh/internal/util/labels"
	"github.com/imamik/podssh/internal/util/prerequisites"
)

// SyncOptions carries the flags of the sync command.
type SyncOptions struct {
	ConfigPath  string
	Provider    string
	EnvFile     string
	MetricsFile string
	DryRun      bool
	JSON        bool
	Verbosity   int
}

// Factory function variables for sync - can be replaced in tests.
var (
	loadConfig = config.Load
	loadEnv    = config.LoadEnv

	newRunPodSource = func(_ *config.Config, env *config.Env) inventory.Source {
		return runpod.NewClient(env.RunPodAPIKey,
			runpod.WithEndpoint(env.RunPodAPIURL),
			runpod.WithTimeout(env.RequestTimeout),
			runpod.WithUserAgent("podssh/"+Version),
		)
	}

	newHCloudSource = func(cfg *config.Config, env *config.Env) inventory.Source {
		return hcloud.NewRealClient(env.HCloudToken,
			hcloud.WithLabelSelector(labels.Selector(cfg.HCloud.Labels)))
	}

	newLogger = func(verbosity int) logr.Logger {
		return logging.New(os.Stderr, verbosity)
	}

	now = time.Now
)

// Version is reported in the RunPod User-Agent header. Set by the
// commands package.
var Version = "dev"

// Sync reconciles the managed SSH config with the provider inventory.
func Sync(ctx context.Context, opts SyncOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyProviderOverride(cfg, opts.Provider); err != nil {
		return err
	}

	env, err := loadEnv(opts.EnvFile)
	if err != nil {
		return err
	}

	path, err := checkSyncPreconditions(cfg, env)
	if err != nil {
		return err
	}

	source, err := newSource(cfg, env)
	if err != nil {
		return err
	}

	logger := newLogger(opts.Verbosity).WithName("sync")
	reconciler := reconcile.New(source, reconcile.Options{
		Provider: cfg.Provider,
		Template: cfg.Template(),
		Path:     path,
		DryRun:   opts.DryRun,
	}, reconcile.WithLogger(logger))

	runCtx, cancel := context.WithTimeout(ctx, env.RequestTimeout)
	defer cancel()

	start := now()
	report, runErr := reconciler.Run(runCtx)
	took := now().Sub(start)

	if opts.MetricsFile != "" {
		if err := writeMetrics(opts.MetricsFile, cfg.Provider, report, runErr, took); err != nil {
			if runErr != nil {
				log.Printf("Warning: %v", err)
			} else {
				return err
			}
		}
	}

	if report == nil {
		return runErr
	}

	if opts.JSON {
		if err := printSyncJSON(report); err != nil {
			return err
		}
	} else {
		fmt.Print(renderSyncReport(report, isInteractiveTTY()))
		if opts.DryRun {
			fmt.Printf("\n# dry run: %s was not modified\n", report.Path)
			fmt.Print(string(report.Document.Bytes()))
		}
	}

	return runErr
}

// applyProviderOverride switches the provider chosen on the command line.
// A config file name that followed the old provider follows the new one.
func applyProviderOverride(cfg *config.Config, provider string) error {
	if provider == "" || provider == cfg.Provider {
		return nil
	}
	if cfg.SSH.ConfigFile == cfg.Provider {
		cfg.SSH.ConfigFile = provider
	}
	cfg.Provider = provider
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid provider: %w", err)
	}
	return nil
}

// checkSyncPreconditions verifies credential, config directory and
// identity file before anything touches the network or the filesystem.
// It returns the managed config path.
func checkSyncPreconditions(cfg *config.Config, env *config.Env) (string, error) {
	credential, credentialName := env.Credential(cfg.Provider)

	dir, err := cfg.ConfigDirPath()
	if err != nil {
		return "", err
	}
	identity, err := cfg.IdentityFilePath()
	if err != nil {
		return "", err
	}

	results := prerequisites.Run([]prerequisites.Check{
		prerequisites.Credential(credentialName, credential),
		prerequisites.ConfigDir(dir),
		prerequisites.IdentityFile(identity),
	})
	if results.HasErrors() {
		return "", results.Error()
	}

	return cfg.ConfigFilePath()
}

func newSource(cfg *config.Config, env *config.Env) (inventory.Source, error) {
	switch cfg.Provider {
	case config.ProviderRunPod:
		return newRunPodSource(cfg, env), nil
	case config.ProviderHCloud:
		return newHCloudSource(cfg, env), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}

func writeMetrics(path, provider string, report *reconcile.Report, runErr error, took time.Duration) error {
	recorder := metrics.NewRecorder()
	recorder.Observe(provider, report, runErr, took, now())
	return recorder.WriteTextfile(path)
}

// printSyncJSON outputs the report as JSON.
func printSyncJSON(report *reconcile.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
