// Package testutils provides testing utilities shared across packages.
//
// This package contains helpers for:
//  1. Creating test questions with choices
//  2. Inserting them into a question store
//  3. Capturing log records in memory
//  4. Recording emitted question events
//
// # Test Questions
//
//	// A question titled "q1" with one correct and one incorrect choice:
//	q := testutils.CreateTestQuestion(t, "q1", testutils.Correct("4"), testutils.Incorrect("5"))
//
//	// The same, stored:
//	q := testutils.MustInsertQuestion(ctx, t, questionStore, "q1", testutils.Correct("4"))
//
// # Capturing Logs
//
//	handler := testutils.NewTestSlogHandler()
//	logger := slog.New(handler)
//	...
//	entries := handler.Entries()
package testutils
