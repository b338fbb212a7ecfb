// Package store keeps live, refetchable snapshots of backend tables.
//
// Each ListStore mirrors one table: it loads the active/ordered rows on first
// read and refetches the whole collection whenever the change broker reports a
// mutation on that table. Coarse refetch-on-any-change is deliberate —
// simplicity over efficiency at this data volume.
package store

import (
	"sync"

	"github.com/Karen2677/RisingHKT/pkg/broker"

	"go.uber.org/zap"
)

// Snapshot is the read contract handed to page assemblers: data, a loading
// flag, and the last failure as a plain string. Fetch errors never escape as
// Go errors past this boundary.
type Snapshot[T any] struct {
	Data    []T
	Loading bool
	Err     string
}

// FetchFunc reads the full active/ordered row set from the backend.
type FetchFunc[T any] func() ([]T, error)

// ListStore is a concurrency-safe snapshot of one table.
type ListStore[T any] struct {
	name  string
	fetch FetchFunc[T]
	log   *zap.Logger

	mu      sync.Mutex
	data    []T
	err     string
	loaded  bool
	started uint64 // sequence of the most recently started fetch
	applied uint64 // sequence of the fetch whose result is installed
}

// NewListStore creates a store for one table. Nothing is fetched until the
// first Get.
func NewListStore[T any](name string, fetch FetchFunc[T], log *zap.Logger) *ListStore[T] {
	return &ListStore[T]{name: name, fetch: fetch, log: log}
}

// Get returns the current snapshot, performing the initial read on first use.
// Loading is false once any fetch has completed, success or failure.
func (s *ListStore[T]) Get() Snapshot[T] {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		s.Refresh()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{
		Data:    s.data,
		Loading: !s.loaded,
		Err:     s.err,
	}
}

// Refresh re-reads the whole collection. Concurrent refreshes race freely but
// the installed result is always from the latest started fetch: a slow stale
// read can never overwrite a fresher snapshot.
func (s *ListStore[T]) Refresh() {
	s.mu.Lock()
	s.started++
	seq := s.started
	s.mu.Unlock()

	data, err := s.fetch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		// A later-started fetch already landed; discard this result.
		return
	}
	s.applied = seq
	s.loaded = true

	if err != nil {
		// Keep the previous data so the page can degrade instead of blanking.
		s.err = err.Error()
		s.log.Warn("snapshot refresh failed",
			zap.String("table", s.name),
			zap.Error(err),
		)
		return
	}
	s.err = ""
	s.data = data
}

// Watch subscribes the store to change notifications for its table and
// returns a release function. The subscription must be released on teardown;
// releasing it stops the refresh goroutine.
func (s *ListStore[T]) Watch(b *broker.TableBroker) func() {
	ch := b.Subscribe(s.name)

	go func() {
		for range ch {
			s.Refresh()
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.Unsubscribe(s.name, ch)
		})
	}
}
