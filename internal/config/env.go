package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds settings read from the process environment.
type Env struct {
	RunPodAPIKey   string        `envconfig:"RUNPOD_API_KEY"`
	RunPodAPIURL   string        `envconfig:"RUNPOD_API_URL" default:"https://api.runpod.io/graphql"`
	HCloudToken    string        `envconfig:"HCLOUD_TOKEN"`
	RequestTimeout time.Duration `envconfig:"PODSSH_REQUEST_TIMEOUT" default:"30s"`
}

// LoadEnv reads Env from the environment. When envFile is set, its
// variables are loaded first without overriding ones already set.
func LoadEnv(envFile string) (*Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &env, nil
}

// Credential returns the API credential and the variable it comes from
// for the given provider.
func (e *Env) Credential(provider string) (value, name string) {
	switch provider {
	case ProviderHCloud:
		return e.HCloudToken, "HCLOUD_TOKEN"
	default:
		return e.RunPodAPIKey, "RUNPOD_API_KEY"
	}
}
