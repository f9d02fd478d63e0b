// Package kv gives typed, failure-tolerant access to a durable key-value medium.
//
// Reads never fail: a missing key, an unreadable medium or a value that does not
// decode all yield the caller's default. Writes never fail either; errors are
// logged and kept for inspection while the caller's in-memory state stays
// authoritative.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Medium is a raw text key-value backend.
type Medium interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Store wraps a Medium with JSON encoding.
type Store struct {
	medium Medium
	logger *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// New returns a Store over medium. A nil medium behaves as permanently unavailable.
func New(medium Medium, logger *slog.Logger) *Store {
	if medium == nil {
		medium = Unavailable{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{medium: medium, logger: logger}
}

// Read decodes the value stored under key into a T, or returns def.
func Read[T any](s *Store, key string, def T) T {
	raw, found, err := s.medium.Get(key)
	if err != nil {
		s.record(err)
		s.logger.Warn("kv: read failed, using default",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return def
	}
	if !found {
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Warn("kv: corrupt value, using default",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return def
	}
	return value
}

// Write encodes value and stores it under key. Failures are swallowed.
func (s *Store) Write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.record(fmt.Errorf("encode %q: %w", key, err))
		s.logger.Warn("kv: encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.medium.Set(key, string(data)); err != nil {
		s.record(err)
		s.logger.Warn("kv: write failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	s.record(nil)
	s.logger.Debug("kv: written", slog.String("key", key), slog.Int("bytes", len(data)))
}

// LastError returns the error from the most recent failed operation, cleared by
// the next successful write.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) record(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// ErrUnavailable is returned by Unavailable when it carries no cause.
var ErrUnavailable = errors.New("storage unavailable")

// Unavailable is a Medium that always fails, used when no durable medium could
// be opened.
type Unavailable struct {
	Err error
}

func (u Unavailable) err() error {
	if u.Err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, u.Err)
	}
	return ErrUnavailable
}

func (u Unavailable) Get(string) (string, bool, error) { return "", false, u.err() }
func (u Unavailable) Set(string, string) error         { return u.err() }

// Memory is an in-process Medium. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory medium.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}
