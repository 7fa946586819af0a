package cards

import (
	"context"
	"errors"
	"time"

	"github.com/cardforge/cardforge/internal/sheet"
)

// Retention is how long the durable tiers keep a shared card (90 days).
const Retention = 90 * 24 * time.Hour

// KeyPrefix namespaces card records in the keyed stores.
const KeyPrefix = "card:"

var (
	// ErrNotFound means no tier holds a card under the id. It is an expected
	// outcome, never a storage fault.
	ErrNotFound = errors.New("card not found")
)

// Repository persists shared cards by opaque id. Cards are written once and
// never updated.
type Repository interface {
	Put(ctx context.Context, id string, card *sheet.SharedCard) error
	Get(ctx context.Context, id string) (*sheet.SharedCard, error)
}

// StorageError reports that every storage tier failed an operation.
type StorageError struct {
	Op  string
	ID  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "cards: " + e.Op + " " + e.ID + ": no storage tier available"
	}
	return "cards: " + e.Op + " " + e.ID + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
