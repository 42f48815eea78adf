// Package stubapi is the in-process backend the reader talks to when no
// server address is configured.
//
// It serves the same REST surface as a real feed server (login, feed and
// version endpoints) from a chi router, with one configured account and a
// fixed set of feed items. [Transport] plugs the router into an HTTP client
// so requests never leave the process.
package stubapi
