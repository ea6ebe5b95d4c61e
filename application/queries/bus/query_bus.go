package bus

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Query is a read-only request. Validate reports problems with the
// query parameters, before any handler runs.
type Query interface {
	Validate() error
}

// QueryHandler answers one query type
type QueryHandler interface {
	Handle(ctx context.Context, query Query) (interface{}, error)
}

// QueryHandlerFunc adapts a function to the QueryHandler interface
type QueryHandlerFunc func(ctx context.Context, query Query) (interface{}, error)

// Handle implements QueryHandler
func (f QueryHandlerFunc) Handle(ctx context.Context, query Query) (interface{}, error) {
	return f(ctx, query)
}

// QueryBus routes queries to handlers by their concrete type
type QueryBus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]QueryHandler
}

// NewQueryBus creates an empty query bus
func NewQueryBus() *QueryBus {
	return &QueryBus{handlers: make(map[reflect.Type]QueryHandler)}
}

// Register binds a handler to the concrete type of queryType. Each
// query type takes exactly one handler.
func (b *QueryBus) Register(queryType Query, handler QueryHandler) error {
	t := reflect.TypeOf(queryType)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, taken := b.handlers[t]; taken {
		return fmt.Errorf("query type %s already registered", t.Name())
	}
	b.handlers[t] = handler
	return nil
}

// Ask validates the query and returns its handler's result. Handler
// failures come back wrapped with the original error in the chain.
func (b *QueryBus) Ask(ctx context.Context, query Query) (interface{}, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("query validation failed: %w", err)
	}

	b.mu.RLock()
	handler, ok := b.handlers[reflect.TypeOf(query)]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no handler registered for query type %T", query)
	}

	result, err := handler.Handle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query handler failed: %w", err)
	}
	return result, nil
}

// Cache is the storage surface the caching middleware needs. TTL is in
// seconds.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttl int) error
}

// CachingMiddleware memoizes query results. The cache key embeds the
// query's concrete type and all of its fields, so two queries compare
// equal exactly when their parameters do. Errors are never cached.
type CachingMiddleware struct {
	cache Cache
	ttl   int
}

// NewCachingMiddleware creates a caching middleware with a TTL in seconds
func NewCachingMiddleware(cache Cache, ttl int) *CachingMiddleware {
	return &CachingMiddleware{cache: cache, ttl: ttl}
}

// Wrap adds caching around a query handler
func (m *CachingMiddleware) Wrap(next QueryHandler) QueryHandler {
	return QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		key := fmt.Sprintf("%T:%+v", query, query)

		if cached, ok := m.cache.Get(ctx, key); ok {
			return cached, nil
		}

		result, err := next.Handle(ctx, query)
		if err != nil {
			return nil, err
		}

		m.cache.Set(ctx, key, result, m.ttl)
		return result, nil
	})
}

// Metrics is the instrumentation surface the metrics middleware needs
type Metrics interface {
	StartTimer(metric, label string) Timer
	Increment(metric, label string)
}

// Timer measures one in-flight operation
type Timer interface {
	Stop()
}

// MetricsMiddleware counts queries by type and outcome and times each
// execution under the query_duration metric.
type MetricsMiddleware struct {
	metrics Metrics
}

// NewMetricsMiddleware creates a metrics middleware
func NewMetricsMiddleware(metrics Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Wrap adds instrumentation around a query handler
func (m *MetricsMiddleware) Wrap(next QueryHandler) QueryHandler {
	return QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		name := reflect.TypeOf(query).Name()

		timer := m.metrics.StartTimer("query_duration", name)
		defer timer.Stop()
		m.metrics.Increment("query_count", name)

		result, err := next.Handle(ctx, query)
		if err != nil {
			m.metrics.Increment("query_errors", name)
			return nil, err
		}

		m.metrics.Increment("query_success", name)
		return result, nil
	})
}
