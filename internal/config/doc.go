// Package config defines the settings model shared by the podssh commands.
//
// Settings come from two places. The YAML settings file (see [LoadFile])
// holds the stable choices: which provider to read, the fixed User and
// IdentityFile applied to every host block, and where the managed SSH
// config fragment lives. The environment (see [LoadEnv]) holds secrets
// and tuning knobs such as the provider API key and the request timeout.
//
// A missing settings file is not an error; [Default] values are used.
package config
