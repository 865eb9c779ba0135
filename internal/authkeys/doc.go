// Package authkeys pulls SSH public keys out of free-form text.
//
// A key line is "<type> <material> <comment>" where type is one of a
// configurable set of prefixes and the comment contains an '@'. Anything
// else in the input is noise and is skipped. Matches keep first-occurrence
// order and exact duplicates are dropped.
//
// WriteFile overwrites the output with exactly the matched keys. AppendRaw
// is a different operation: it appends the untouched input, noise and
// duplicates included.
package authkeys
