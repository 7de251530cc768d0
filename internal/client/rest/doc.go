// Package rest provides the HTTP access layer for a JSON backend.
// Every request flows through a single classification pipeline: the raw
// network outcome (success status, HTTP error status, transport failure,
// malformed body) is mapped deterministically into either a success
// response or one of a small set of typed errors that calling code can
// branch on uniformly. Failures additionally pass through an interception
// policy that handles unauthorized sessions, redacts diagnostic detail
// outside debug mode, and logs the original error.
package rest
