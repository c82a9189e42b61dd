package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// MemoryStore is the in-process fixed-window store. It is the default
// backend; one instance is shared by all requests of the process.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window

	windowLen time.Duration
	max       int
	now       func() time.Time
}

func NewMemoryStore(windowLen time.Duration, max int) *MemoryStore {
	return &MemoryStore{
		windows:   make(map[string]*window),
		windowLen: windowLen,
		max:       max,
		now:       time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, key string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w := s.windows[key]
	if w == nil || now.Sub(w.start) >= s.windowLen {
		w = &window{start: now}
		s.windows[key] = w
	}

	if w.count >= s.max {
		retry := w.start.Add(s.windowLen).Sub(now)
		if retry <= 0 {
			retry = time.Second
		}
		return Result{Allowed: false, RetryAfter: retry}, nil
	}

	w.count++
	return Result{Allowed: true}, nil
}
