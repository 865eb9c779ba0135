// Package reconcile runs one inventory-to-SSH-config pass.
//
// A run lists instances from an inventory.Source, extracts SSH endpoints
// from each record, synthesizes the host blocks and replaces the managed
// config file. A record that cannot be converted is reported and skipped;
// it never aborts the run. An inventory error aborts before anything is
// written, and a write error leaves the previous file untouched.
package reconcile
