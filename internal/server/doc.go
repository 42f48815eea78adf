// Package server runs the standalone stub backend over real TCP.
//
// It owns the HTTP listener lifecycle: startup, context-driven shutdown and
// draining of in-flight requests within the configured timeout.
package server
