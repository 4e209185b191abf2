package grading

import (
	"errors"
	"fmt"
	"strings"
)

// Policy names a scoring rule.
type Policy string

// Supported scoring policies.
const (
	// PolicyAllOrNothing awards the question's points only when the
	// selection is exactly the set of correct choices.
	PolicyAllOrNothing Policy = "all_or_nothing"

	// PolicyPartial awards points in proportion to the correct choices
	// selected, as long as no incorrect choice was selected.
	PolicyPartial Policy = "partial"
)

// ErrInvalidPolicy is returned for an unknown scoring policy name.
var ErrInvalidPolicy = errors.New("invalid grading policy")

// ParsePolicy converts a policy name (case-insensitive) into a Policy.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(name)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
	return p, nil
}

// Valid reports whether p is a supported policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyAllOrNothing, PolicyPartial:
		return true
	default:
		return false
	}
}

// Params defines the configurable parameters of the grader.
type Params struct {
	Policy Policy
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		Policy: PolicyAllOrNothing,
	}
}
