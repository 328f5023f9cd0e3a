// internal/adapters/out/firestore/store.go
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IDKey is the reserved document key under which GetDocuments exposes the
// store-generated document ID. Entity mapping strips it before shaping the
// public form; it must never leak through the API.
const IDKey = "_id"

// ErrUnavailable is returned by every operation while the store connection
// could not be established at boot. Callers surface it as a clear status
// instead of an opaque failure.
var ErrUnavailable = errors.New("store: not connected")

// ErrShapeMismatch marks a stored document that does not conform to the
// expected entity schema on read. Reads fail loudly on it rather than
// silently dropping the record.
var ErrShapeMismatch = errors.New("store: stored document shape mismatch")

// StoreError wraps a failed store round trip with enough context for logs.
// HTTP handlers surface it truncated, never the raw internals.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps a Firestore client behind the generic document-store contract:
// create/read parameterized by collection name, exact-match filters, opaque
// string IDs. The raw Firestore types stay inside this package.
//
// Store is safe for concurrent use; the Firestore client itself is
// concurrency-safe and Store adds no state of its own.
type Store struct {
	Client *firestore.Client
}

// NewStore wraps client. A nil client yields a degraded store whose every
// operation returns ErrUnavailable (boot keeps serving in that state).
func NewStore(client *firestore.Client) *Store {
	return &Store{Client: client}
}

// Available reports whether the store connection was established.
func (s *Store) Available() bool {
	return s != nil && s.Client != nil
}

// CreateDocument inserts data as a new document into the named collection
// and returns the store-generated ID.
func (s *Store) CreateDocument(ctx context.Context, collection string, data map[string]any) (string, error) {
	if !s.Available() {
		return "", &StoreError{Op: "create", Collection: collection, Err: ErrUnavailable}
	}

	ref, _, err := s.Client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", &StoreError{Op: "create", Collection: collection, Err: err}
	}
	return ref.ID, nil
}

// CreateDocumentWithID inserts data keyed by docID, failing over to
// created=false when a document with that ID already exists. This is the
// upsert-style guard that makes check-then-insert seeding safe under
// concurrent invocation.
func (s *Store) CreateDocumentWithID(ctx context.Context, collection, docID string, data map[string]any) (created bool, err error) {
	if !s.Available() {
		return false, &StoreError{Op: "create", Collection: collection, Err: ErrUnavailable}
	}

	_, err = s.Client.Collection(collection).Doc(docID).Create(ctx, data)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, &StoreError{Op: "create", Collection: collection, Err: err}
	}
	return true, nil
}

// GetDocuments returns documents matching filter (exact-match equality per
// key) in store-native order, capped at limit entries when limit > 0.
// Each returned document carries its ID under IDKey.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int) ([]map[string]any, error) {
	if !s.Available() {
		return nil, &StoreError{Op: "query", Collection: collection, Err: ErrUnavailable}
	}

	q := s.Client.Collection(collection).Query
	for k, v := range filter {
		q = q.Where(k, "==", v)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, &StoreError{Op: "query", Collection: collection, Err: err}
	}

	out := make([]map[string]any, 0, len(snaps))
	for _, snap := range snaps {
		data := snap.Data()
		if data == nil {
			data = map[string]any{}
		}
		data[IDKey] = snap.Ref.ID
		out = append(out, data)
	}
	return out, nil
}

// CollectionNames lists collection IDs, for the connectivity report.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, &StoreError{Op: "collections", Collection: "", Err: ErrUnavailable}
	}

	refs, err := s.Client.Collections(ctx).GetAll()
	if err != nil {
		return nil, &StoreError{Op: "collections", Collection: "", Err: err}
	}

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.ID)
	}
	return names, nil
}
