package store

import (
	"context"
	"errors"
)

// Collection names match the hosted document database the admin SPA was
// originally pointed at; keeping them verbatim lets both talk to the
// same data set.
const (
	CollectionPrizes   = "prize_database"
	CollectionRaffles  = "raffles"
	CollectionSponsors = "sponsors"
	CollectionGamers   = "users"
	CollectionAdmins   = "admins"
	CollectionAuth     = "auth_users"
)

// ErrNotFound is returned by Get for a missing document.
var ErrNotFound = errors.New("document not found")

// Doc is one raw document: an opaque JSON payload under a collection-unique id.
type Doc struct {
	ID   string
	Data []byte
}

// Store is a minimal document store: named collections of JSON documents.
// List order is unspecified; callers sort. An empty collection lists to an
// empty slice, never an error.
type Store interface {
	List(ctx context.Context, collection string) ([]Doc, error)
	Get(ctx context.Context, collection, id string) (*Doc, error)
	// Add stores data under a freshly generated id and returns it.
	Add(ctx context.Context, collection string, data []byte) (string, error)
	// Set stores data under the given id, creating or replacing.
	Set(ctx context.Context, collection, id string, data []byte) error
	Delete(ctx context.Context, collection, id string) error
}
