// Package task contains the concurrent machinery for batch processing:
// a bounded-concurrency scheduler that preserves input order, and a
// deadline-bound executor for single generation calls.
package task
