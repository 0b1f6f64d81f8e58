package inbox

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cristianoliveira/pushtray/internal/kv"
	"github.com/cristianoliveira/pushtray/internal/logging"
)

var (
	// ErrNotInitialized indicates a store operation before Initialize.
	ErrNotInitialized = errors.New("inbox: store not initialized")
	// ErrEmptyID indicates an add with a blank notification ID.
	ErrEmptyID = errors.New("inbox: notification ID cannot be empty")
)

// Defaults used when Options fields are zero.
const (
	DefaultKey       = "notifications"
	DefaultMaxStored = 100
)

// Options configures a Store.
type Options struct {
	// Key is the storage key the record list is persisted under.
	Key string
	// MaxStored caps the number of retained records. Insertions beyond the
	// cap evict the oldest record.
	MaxStored int
	// Logger receives persistence warnings. Defaults to the global logger.
	Logger logging.Logger
}

// listenerEntry keeps registration order deterministic.
type listenerEntry struct {
	id int
	fn func()
}

// Store maintains the ordered, capacity-bounded notification list and keeps
// it synchronized with one persisted blob.
//
// The store runs no internal goroutines and performs no retries. A mutex
// serializes access so concurrent callers cannot corrupt the list, but the
// persisted key is still subject to cross-process races; the store assumes
// it is the sole writer.
type Store struct {
	mu          sync.Mutex
	kv          kv.Store
	key         string
	max         int
	logger      logging.Logger
	initialized bool
	records     []Notification // newest first
	listeners   []listenerEntry
	nextID      int
}

// New creates a Store backed by the given kv.Store. The store must be
// initialized before use.
func New(store kv.Store, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.MaxStored <= 0 {
		opts.MaxStored = DefaultMaxStored
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetGlobal()
	}
	return &Store{
		kv:     store,
		key:    opts.Key,
		max:    opts.MaxStored,
		logger: opts.Logger,
	}
}

// Initialize loads the persisted record list. An absent key yields an empty
// inbox. A malformed blob is discarded with a warning and the store starts
// empty; notification history is not worth failing startup over. Only I/O
// errors propagate, leaving the store uninitialized so the caller may retry.
// Calling Initialize again after success is a no-op.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}

	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			s.records = nil
			s.initialized = true
			return nil
		}
		return fmt.Errorf("inbox: load notifications: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		s.logger.Warn("discarding malformed notification history", "key", s.key, "error", err)
		records = nil
	}
	s.records = records
	s.initialized = true
	return nil
}

// Add inserts a notification at the head of the list, evicting the oldest
// records past the capacity cap. Adding a duplicate ID is a no-op that
// returns (false, nil) without touching order or firing listeners.
//
// A persist failure does not roll the insertion back: the returned bool is
// still true, listeners still fire, and the error reports the failed save.
func (s *Store) Add(ctx context.Context, n Notification) (bool, error) {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return false, ErrNotInitialized
	}
	if n.ID == "" {
		s.mu.Unlock()
		return false, ErrEmptyID
	}
	for _, existing := range s.records {
		if existing.Equal(n) {
			s.mu.Unlock()
			return false, nil
		}
	}

	records := make([]Notification, 0, len(s.records)+1)
	records = append(records, n)
	records = append(records, s.records...)
	if len(records) > s.max {
		records = records[:s.max]
	}
	s.records = records

	err := s.persistLocked(ctx, "add")
	s.mu.Unlock()
	s.notify()
	return true, err
}

// MarkRead flips a notification to read. Unknown IDs and already-read
// notifications are silent no-ops returning (false, nil).
func (s *Store) MarkRead(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return false, ErrNotInitialized
	}
	index := -1
	for i, n := range s.records {
		if n.ID == id {
			index = i
			break
		}
	}
	if index < 0 || s.records[index].Read {
		s.mu.Unlock()
		return false, nil
	}

	records := make([]Notification, len(s.records))
	copy(records, s.records)
	records[index] = records[index].MarkRead()
	s.records = records

	err := s.persistLocked(ctx, "mark read")
	s.mu.Unlock()
	s.notify()
	return true, err
}

// MarkAllRead flips every unread notification to read with a single persist.
// When nothing is unread it returns (false, nil) and fires no listeners, so
// observers are not re-rendered for a no-op.
func (s *Store) MarkAllRead(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return false, ErrNotInitialized
	}
	unread := 0
	for _, n := range s.records {
		if !n.Read {
			unread++
		}
	}
	if unread == 0 {
		s.mu.Unlock()
		return false, nil
	}

	records := make([]Notification, len(s.records))
	for i, n := range s.records {
		if !n.Read {
			n = n.MarkRead()
		}
		records[i] = n
	}
	s.records = records

	err := s.persistLocked(ctx, "mark all read")
	s.mu.Unlock()
	s.notify()
	return true, err
}

// Remove deletes a notification by ID. Unknown IDs are silent no-ops
// returning (false, nil).
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return false, ErrNotInitialized
	}
	index := -1
	for i, n := range s.records {
		if n.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return false, nil
	}

	records := make([]Notification, 0, len(s.records)-1)
	records = append(records, s.records[:index]...)
	records = append(records, s.records[index+1:]...)
	s.records = records

	err := s.persistLocked(ctx, "remove")
	s.mu.Unlock()
	s.notify()
	return true, err
}

// Clear empties the inbox and erases the persisted key. Listeners fire
// unconditionally, even when the inbox was already empty.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return ErrNotInitialized
	}
	s.records = nil
	var err error
	if deleteErr := s.kv.Delete(ctx, s.key); deleteErr != nil {
		s.logger.Warn("failed to erase persisted notifications", "key", s.key, "error", deleteErr)
		err = fmt.Errorf("inbox: clear notifications: %w", deleteErr)
	}
	s.mu.Unlock()
	s.notify()
	return err
}

// Notifications returns a copy of the current record list, newest first.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]Notification, len(s.records))
	copy(records, s.records)
	return records
}

// Get returns the notification with the given ID.
func (s *Store) Get(id string) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.records {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.records {
		if !n.Read {
			count++
		}
	}
	return count
}

// Len returns the number of stored notifications.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Subscribe registers a listener invoked synchronously after every mutation,
// in registration order, on the mutating goroutine. The returned cancel
// function unregisters the listener and is safe to call more than once.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, entry := range s.listeners {
			if entry.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// persistLocked writes the current record list to storage. Callers must hold
// the mutex. A failed save keeps the in-memory state authoritative; the
// error is logged and returned so hosts may surface it.
func (s *Store) persistLocked(ctx context.Context, op string) error {
	data, err := encodeRecords(s.records)
	if err != nil {
		s.logger.Warn("failed to encode notifications", "op", op, "error", err)
		return fmt.Errorf("inbox: %s: %w", op, err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("failed to persist notifications", "op", op, "key", s.key, "error", err)
		return fmt.Errorf("inbox: %s: persist notifications: %w", op, err)
	}
	return nil
}

// notify invokes all listeners outside the lock.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), len(s.listeners))
	for i, entry := range s.listeners {
		fns[i] = entry.fn
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
