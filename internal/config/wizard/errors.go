package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errUserRequired      = errors.New("ssh user is required")
	errUserInvalid       = errors.New("ssh user must not contain whitespace")
	errPathRequired      = errors.New("path is required")
	errConfigFileInvalid = errors.New("config file must be a plain file name without directories")
	errKeyTypesRequired  = errors.New("at least one key type is required")

	// ErrOverwriteDeclined is returned by WriteConfig when the user keeps
	// the existing file.
	ErrOverwriteDeclined = errors.New("existing settings file kept")
)
