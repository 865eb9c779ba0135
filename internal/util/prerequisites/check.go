// Package prerequisites checks the environment before podssh touches the
// network or the filesystem.
//
// Each Check carries its own sentinel error and a hint telling the user
// how to fix it, so a missing API key, config directory or identity file
// each produce a distinct message.
package prerequisites

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for each precondition.
var (
	ErrMissingCredential   = errors.New("missing API credential")
	ErrMissingConfigDir    = errors.New("missing SSH config directory")
	ErrMissingIdentityFile = errors.New("missing SSH identity file")
)

// Check is a single precondition.
type Check struct {
	// Name identifies the check in output.
	Name string

	// Run returns nil when the precondition holds.
	Run func() error

	// Hint tells the user how to satisfy the precondition.
	Hint string
}

// CheckResult contains the outcome of a single check.
type CheckResult struct {
	Check Check
	Err   error
}

// CheckResults contains the outcome of a list of checks.
type CheckResults struct {
	Results []CheckResult
	Failed  []CheckResult
}

// HasErrors returns true if any check failed.
func (r *CheckResults) HasErrors() bool {
	return len(r.Failed) > 0
}

// Error joins all failures into one error. Each failure keeps its
// sentinel so callers can use errors.Is.
func (r *CheckResults) Error() error {
	if !r.HasErrors() {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		if f.Check.Hint != "" {
			errs = append(errs, fmt.Errorf("%w\n  %s", f.Err, f.Check.Hint))
			continue
		}
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Run runs every check, without stopping at the first failure.
func Run(checks []Check) *CheckResults {
	results := &CheckResults{}
	for _, c := range checks {
		result := CheckResult{Check: c, Err: c.Run()}
		results.Results = append(results.Results, result)
		if result.Err != nil {
			results.Failed = append(results.Failed, result)
		}
	}
	return results
}

// Credential checks that an environment variable holding an API key is set.
func Credential(name, value string) Check {
	return Check{
		Name: "credential",
		Run: func() error {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%w: %s environment variable is not set", ErrMissingCredential, name)
			}
			return nil
		},
		Hint: fmt.Sprintf("Please set it with: export %s=your_api_key", name),
	}
}

// ConfigDir checks that the SSH config directory exists.
func ConfigDir(path string) Check {
	return Check{
		Name: "config-dir",
		Run: func() error {
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("%w: %s does not exist", ErrMissingConfigDir, path)
			}
			if !info.IsDir() {
				return fmt.Errorf("%w: %s is not a directory", ErrMissingConfigDir, path)
			}
			return nil
		},
		Hint: fmt.Sprintf("Please create it with: mkdir -p %s", path),
	}
}

// IdentityFile checks that the SSH private key referenced by host blocks
// exists.
func IdentityFile(path string) Check {
	return Check{
		Name: "identity-file",
		Run: func() error {
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("%w: %s does not exist", ErrMissingIdentityFile, path)
			}
			if info.IsDir() {
				return fmt.Errorf("%w: %s is a directory", ErrMissingIdentityFile, path)
			}
			return nil
		},
		Hint: fmt.Sprintf("Please create an SSH key with: ssh-keygen -t ed25519 -f %s", path),
	}
}
