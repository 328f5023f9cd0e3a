// internal/adapters/in/http/router_test.go
package httpin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fsout "elanor/internal/adapters/out/firestore"
	usecase "elanor/internal/application/usecase"
	fragdom "elanor/internal/domain/fragrance"
	orderdom "elanor/internal/domain/order"
	subdom "elanor/internal/domain/subscriber"
)

// ============================================================
// In-memory fakes (request-path tests run without a store)
// ============================================================

type memCatalogRepo struct {
	bySlug map[string]fragdom.Fragrance
	order  []string
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{bySlug: map[string]fragdom.Fragrance{}}
}

func (r *memCatalogRepo) List(ctx context.Context) ([]fragdom.Fragrance, error) {
	out := make([]fragdom.Fragrance, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.bySlug[slug])
	}
	return out, nil
}

func (r *memCatalogRepo) GetBySlug(ctx context.Context, slug string) (fragdom.Fragrance, error) {
	f, ok := r.bySlug[slug]
	if !ok {
		return fragdom.Fragrance{}, fragdom.ErrNotFound
	}
	return f, nil
}

func (r *memCatalogRepo) Any(ctx context.Context) (bool, error) {
	return len(r.bySlug) > 0, nil
}

func (r *memCatalogRepo) Create(ctx context.Context, f fragdom.Fragrance) (bool, error) {
	if _, exists := r.bySlug[f.Slug]; exists {
		return false, nil
	}
	r.bySlug[f.Slug] = f
	r.order = append(r.order, f.Slug)
	return true, nil
}

type memSubscriberRepo struct {
	created []subdom.Subscriber
}

func (r *memSubscriberRepo) Create(ctx context.Context, s subdom.Subscriber) (string, error) {
	r.created = append(r.created, s)
	return "sub-1", nil
}

type memOrderRepo struct {
	created []orderdom.Order
}

func (r *memOrderRepo) Create(ctx context.Context, o orderdom.Order) (string, error) {
	r.created = append(r.created, o)
	return "ord-1", nil
}

type testEnv struct {
	router     http.Handler
	catalog    *memCatalogRepo
	subscriber *memSubscriberRepo
	orders     *memOrderRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		catalog:    newMemCatalogRepo(),
		subscriber: &memSubscriberRepo{},
		orders:     &memOrderRepo{},
	}
	env.router = NewRouter(RouterDeps{
		CatalogUC:    usecase.NewCatalogUsecase(env.catalog),
		SubscriberUC: usecase.NewSubscriberUsecase(env.subscriber, nil),
		OrderUC:      usecase.NewOrderUsecase(env.orders),

		Store:          fsout.NewStore(nil),
		DatabaseURLSet: false,
	})
	return env
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// ============================================================
// Tests
// ============================================================

func TestRoot(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Elanor API running", decodeBody(t, rec)["message"])

	rec = do(t, env.router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv()
	rec := do(t, env.router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStatus_NeverFailsWithoutStore(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Nil(t, body["database_url"])
	assert.Nil(t, body["database_name"])
	assert.Equal(t, []any{}, body["collections"])
}

func TestSeed_IdempotentOverHTTP(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(7), body["created"])

	rec = do(t, env.router, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Fragrances already seeded", body["message"])
	assert.Len(t, env.catalog.bySlug, 7)

	rec = do(t, env.router, http.MethodGet, "/seed", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFragrances_ListAfterSeed(t *testing.T) {
	env := newTestEnv()
	do(t, env.router, http.MethodPost, "/seed", "")

	rec := do(t, env.router, http.MethodGet, "/fragrances", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 7)

	seen := map[string]bool{}
	for _, f := range list {
		slug := f["slug"].(string)
		assert.False(t, seen[slug])
		seen[slug] = true
		_, leaked := f["_id"]
		assert.False(t, leaked, "store-internal ID must not be exposed")
	}
}

func TestFragrances_DetailBySlug(t *testing.T) {
	env := newTestEnv()
	do(t, env.router, http.MethodPost, "/seed", "")

	rec := do(t, env.router, http.MethodGet, "/fragrances/pride", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pride", decodeBody(t, rec)["name"])

	rec = do(t, env.router, http.MethodGet, "/fragrances/not-a-sin", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubscribe(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodPost, "/subscribe", `{"email":"a@example.com","name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "sub-1", body["id"])
	require.Len(t, env.subscriber.created, 1)
}

func TestSubscribe_InvalidEmailRejectedWithoutWrite(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodPost, "/subscribe", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "validation failed", body["error"])
	fields := body["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].(map[string]any)["field"])
	assert.Empty(t, env.subscriber.created)
}

func TestOrder(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodPost, "/order",
		`{"email":"a@example.com","items":[{"slug":"pride","quantity":2},{"slug":"envy"}],"notes":"gift"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ord-1", body["id"])

	require.Len(t, env.orders.created, 1)
	items := env.orders.created[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	// absent quantity defaults to 1
	assert.Equal(t, 1, items[1].Quantity)
}

func TestOrder_BadQuantityRejectedWithoutWrite(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodPost, "/order",
		`{"email":"a@example.com","items":[{"slug":"pride","quantity":0}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, env.orders.created)
}

func TestOrder_MalformedJSONIsBadRequest(t *testing.T) {
	env := newTestEnv()

	rec := do(t, env.router, http.MethodPost, "/order", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreUnavailable_DataRoutesReturn500(t *testing.T) {
	// Wire the real Firestore repositories over a nil client: the degraded
	// store must surface a clear 500, not a panic or an opaque failure.
	store := fsout.NewStore(nil)
	router := NewRouter(RouterDeps{
		CatalogUC:    usecase.NewCatalogUsecase(fsout.NewFragranceRepositoryFS(store)),
		SubscriberUC: usecase.NewSubscriberUsecase(fsout.NewSubscriberRepositoryFS(store), nil),
		OrderUC:      usecase.NewOrderUsecase(fsout.NewOrderRepositoryFS(store)),
		Store:        store,
	})

	rec := do(t, router, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not connected")

	rec = do(t, router, http.MethodGet, "/fragrances", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(t, router, http.MethodPost, "/subscribe", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// /test still answers 200 with the degraded report.
	rec = do(t, router, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
