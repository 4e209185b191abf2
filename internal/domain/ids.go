package domain

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers for questions and choices.
// Implementations must never return the same ID twice.
type IDGenerator interface {
	NewID() uuid.UUID
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// SequenceGenerator issues deterministic, strictly increasing IDs.
// The counter occupies the low 8 bytes of the UUID; the high 8 bytes are a
// caller-chosen namespace so that separate generators do not collide.
type SequenceGenerator struct {
	namespace uint64
	next      atomic.Uint64
}

// NewSequenceGenerator creates a SequenceGenerator whose IDs carry the given
// namespace. The first ID issued has sequence number 1.
func NewSequenceGenerator(namespace uint64) *SequenceGenerator {
	return &SequenceGenerator{namespace: namespace}
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], g.namespace)
	binary.BigEndian.PutUint64(id[8:], g.next.Add(1))
	return id
}

// defaultIDGenerator is used when a question is built without WithIDGenerator.
var defaultIDGenerator IDGenerator = UUIDGenerator{}
