// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors keyed by task
// name, and turns panics into errors so that one bad task does not crash the
// process.
package pkgroutine
