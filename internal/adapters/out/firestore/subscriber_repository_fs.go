// internal/adapters/out/firestore/subscriber_repository_fs.go
package firestore

import (
	"context"
	"errors"

	subdom "elanor/internal/domain/subscriber"
)

// Collection design:
// - collection: subscriber
// - docId: store-generated ✅ (the same address may subscribe twice; last
//   write is harmless, dedup is a mailing-list concern, not ours)
const colSubscriber = "subscriber"

// SubscriberRepositoryFS implements subscriber.Repository on the generic Store.
type SubscriberRepositoryFS struct {
	Store *Store
}

func NewSubscriberRepositoryFS(store *Store) *SubscriberRepositoryFS {
	return &SubscriberRepositoryFS{Store: store}
}

func (r *SubscriberRepositoryFS) Create(ctx context.Context, s subdom.Subscriber) (string, error) {
	if r == nil || r.Store == nil {
		return "", errors.New("subscriber_repository_fs: store is nil")
	}

	return r.Store.CreateDocument(ctx, colSubscriber, subscriberDocFromDomain(s))
}

func subscriberDocFromDomain(s subdom.Subscriber) map[string]any {
	var name any
	if s.Name != "" {
		name = s.Name
	}
	return map[string]any{
		"email": s.Email,
		"name":  name,
	}
}
