// Package memory provides process-memory implementations of the store
// interfaces. Nothing is persisted: contents are lost when the process exits.
//
// The stores are not safe for concurrent use; callers serialize access.
package memory
