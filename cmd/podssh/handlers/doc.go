// Package handlers implements the business logic for podssh CLI commands.
//
// Each handler receives parsed flags from the commands package, loads
// settings, runs the engine packages and renders their results. External
// collaborators are held in package-level function variables so tests can
// replace them.
package handlers
