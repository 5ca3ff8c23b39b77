// Package session holds uploaded records and computed calculations for
// the lifetime of a browser session. Entries expire after their TTL and
// are never written to disk.
package session

import (
	"context"
	"errors"

	"hvsrweb/internal/model"
)

var (
	// ErrNotFound is returned for unknown or expired IDs.
	ErrNotFound = errors.New("session entry not found")
	// ErrFull is returned when the store is at capacity.
	ErrFull = errors.New("session store full")
)

// Store is the ephemeral keeper of records and calculations.
type Store interface {
	PutRecord(ctx context.Context, rec *model.Record) error
	Record(ctx context.Context, id string) (*model.Record, error)
	DeleteRecord(ctx context.Context, id string) error

	PutCalculation(ctx context.Context, calc *model.Calculation) error
	Calculation(ctx context.Context, id string) (*model.Calculation, error)
}
