// Package sshconfig builds and writes the managed SSH client configuration
// fragment.
//
// Synthesize is a pure function from extracted endpoints to a Document.
// Names are unique within a Document: when two endpoints share a name the
// block keeps the position of the first one and takes its values from the
// last one. Every such overwrite is returned as a Collision so callers can
// report it.
//
// WriteFile replaces the target file with the serialized Document using a
// temp-file-and-rename, so a failed write never leaves a half-written
// configuration behind.
package sshconfig
