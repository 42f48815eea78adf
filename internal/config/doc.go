// Package config provides configuration loading, merging, and validation
// facilities for go-feed-reader.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged config
// [GetClientConfig] for the validated reader view and [GetServerConfig] for
// the standalone stub server.
package config
