// Package utils provides general-purpose helpers shared by the client core,
// the feature extensions and the stub backend: the resty client wrapper,
// JSON response writing, JWT issuing and parsing, and the at-most-once
// completion guard.
package utils
