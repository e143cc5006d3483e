// Package store provides the record-store backends for attendee persistence.
// Every business operation touches exactly one key, so the interface is a
// whole-record read/write/delete with no multi-key transactions.
package store

import (
	"context"

	"summit-connect/internal/attendee/models"
)

// KeyPrefix namespaces attendee keys in shared stores (Redis).
const KeyPrefix = "attendee:"

// Store is interface-driven to keep the domain logic testable and to allow
// swapping in-memory, Redis, or Postgres persistence without rewiring
// business code.
//
// Semantics:
//   - Put is an upsert: an existing id is replaced wholesale.
//   - Delete is idempotent: removing a missing id returns nil.
//   - List enumerates everything with no ordering guarantee, and may observe
//     a partial snapshot under concurrent writers.
type Store interface {
	List(ctx context.Context) ([]models.Attendee, error)
	Put(ctx context.Context, attendee models.Attendee) error
	Delete(ctx context.Context, id string) error
}
