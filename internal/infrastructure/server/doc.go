// Package server wires configuration, the session loop, the HTTP API and
// the snapshot stream into one process.
package server
