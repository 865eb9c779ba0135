// Package wizard asks for podssh settings interactively and writes them
// as a YAML settings file.
//
// The form groups run one after another with huh, each cancellable through
// the context passed to RunWizard. BuildConfig turns the answers into a
// config.Config and WriteConfig persists it with a short header.
package wizard
