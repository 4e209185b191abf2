// Package store defines interfaces for keeping questions.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of where questions live.
package store
