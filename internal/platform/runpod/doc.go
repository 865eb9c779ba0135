// Package runpod lists pods from the RunPod GraphQL API and converts them
// into inventory instances.
//
// The client issues a single query per call and does not retry. A non-2xx
// response or a GraphQL error is returned as an error and the caller is
// expected to fail the run.
package runpod
