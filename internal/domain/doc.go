// Package domain contains the core business entities of the quiz model: the
// Question aggregate and the Choice values it owns, together with the
// validation rules and sentinel errors that guard them.
//
// The package has no knowledge of storage, transport or logging.
package domain
