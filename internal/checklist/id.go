package checklist

import "github.com/google/uuid"

// NewID returns an opaque identifier, unique within the process with
// overwhelming probability. IDs carry no ordering semantics.
func NewID() string {
	return uuid.NewString()
}
