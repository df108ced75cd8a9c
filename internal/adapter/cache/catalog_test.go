package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/port/mocks"
)

// memStore is an in-memory Store.
type memStore struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) *redis.StringCmd {
	if m.failGet {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

var (
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	bath   = domain.Service{ID: "svc-bath", Name: "Banho", PriceCents: 6000}
)

func TestNilStoreReturnsCatalog(t *testing.T) {
	next := mocks.NewMockServiceCatalog(t)
	assert.Same(t, next, NewCatalogCache(next, nil, time.Minute, logger))
}

func TestLookupReadsThrough(t *testing.T) {
	next := mocks.NewMockServiceCatalog(t)
	store := newMemStore()
	c := NewCatalogCache(next, store, time.Minute, logger)

	next.EXPECT().Lookup(mock.Anything, "u1", "svc-bath").Return(&bath, nil).Once()

	for range 3 {
		got, err := c.Lookup(context.Background(), "u1", "svc-bath")
		require.NoError(t, err)
		assert.Equal(t, bath, *got)
	}
	assert.Equal(t, time.Minute, store.ttls["catalog:u1:svc-bath"])

	var cached domain.Service
	require.NoError(t, json.Unmarshal([]byte(store.data["catalog:u1:svc-bath"]), &cached))
	assert.Equal(t, bath, cached)
}

func TestLookupDoesNotCacheMisses(t *testing.T) {
	next := mocks.NewMockServiceCatalog(t)
	store := newMemStore()
	c := NewCatalogCache(next, store, 0, logger)

	next.EXPECT().Lookup(mock.Anything, "u1", "gone").Return(nil, nil).Times(2)

	for range 2 {
		got, err := c.Lookup(context.Background(), "u1", "gone")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Empty(t, store.data)
}

func TestLookupFallsThroughOnStoreError(t *testing.T) {
	next := mocks.NewMockServiceCatalog(t)
	store := newMemStore()
	store.failGet = true
	c := NewCatalogCache(next, store, time.Minute, logger)

	next.EXPECT().Lookup(mock.Anything, "u1", "svc-bath").Return(&bath, nil).Once()

	got, err := c.Lookup(context.Background(), "u1", "svc-bath")
	require.NoError(t, err)
	assert.Equal(t, "Banho", got.Name)
}

func TestLookupPropagatesCatalogError(t *testing.T) {
	next := mocks.NewMockServiceCatalog(t)
	c := NewCatalogCache(next, newMemStore(), time.Minute, logger)

	next.EXPECT().Lookup(mock.Anything, "u1", "svc-bath").Return(nil, errors.New("db down")).Once()

	_, err := c.Lookup(context.Background(), "u1", "svc-bath")
	assert.EqualError(t, err, "db down")
}
