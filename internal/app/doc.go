// Package app provides the main application logic for talking to the
// configured JSON backend. It wires the REST client together with the
// error-interception policy and renders each outcome as JSON.
package app
