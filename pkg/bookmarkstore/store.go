// Package bookmarkstore is a client-side cache of per-gift bookmark
// status. It mirrors the server's bookmark endpoints into a local map
// keyed by slug, so UI code reads synchronously and only pays a round
// trip on writes or explicit refreshes.
package bookmarkstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// ReauthFunc is invoked when a write is rejected with 401. It should
// start whatever sign-in flow the client has; the store does not retry
// the write afterwards.
type ReauthFunc func(ctx context.Context) error

// Store caches bookmark status locally. Absence of a key means the
// status is unknown, which is distinct from known-not-bookmarked.
type Store struct {
	mu          sync.RWMutex
	state       map[string]bool
	subscribers map[int]func(map[string]bool)
	nextSubID   int

	client      *http.Client
	baseURL     string
	persistence Persistence
	reauth      ReauthFunc
}

type Option func(*Store)

func WithHTTPClient(client *http.Client) Option {
	return func(s *Store) { s.client = client }
}

func WithPersistence(persistence Persistence) Option {
	return func(s *Store) { s.persistence = persistence }
}

func WithReauth(reauth ReauthFunc) Option {
	return func(s *Store) { s.reauth = reauth }
}

// New builds a store for the API at baseURL. With persistence
// configured the previous session's state is loaded eagerly; a load
// failure degrades to an empty state rather than failing construction.
func New(baseURL string, opts ...Option) *Store {
	s := &Store{
		state:       map[string]bool{},
		subscribers: map[int]func(map[string]bool){},
		client:      http.DefaultClient,
		baseURL:     baseURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.persistence != nil {
		if loaded, err := s.persistence.Load(); err == nil {
			s.state = loaded
		}
	}
	return s
}

// IsBookmarked reports the cached status; unknown reads as false
func (s *Store) IsBookmarked(slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state[slug]
}

// HasKnownStatus reports whether the store holds any status for the
// slug, true or false
func (s *Store) HasKnownStatus(slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, known := s.state[slug]
	return known
}

// Snapshot returns a copy of the full cached state
func (s *Store) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyState()
}

// RefreshStatus asks the server for the authoritative status and
// caches it. A 401 means no authenticated user, which resolves to
// not-bookmarked without error. Transport or server failures leave the
// cached state untouched.
func (s *Store) RefreshStatus(ctx context.Context, slug string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/user/bookmarked/"+slug, nil)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		s.setKey(slug, false)
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			IsBookmarked bool `json:"isBookmarked"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, err
	}

	s.setKey(slug, envelope.Data.IsBookmarked)
	return envelope.Data.IsBookmarked, nil
}

// SetBookmarked saves the gift on the server, then records the new
// status. The cache is only written after the server confirms; there
// is no optimistic update to roll back.
func (s *Store) SetBookmarked(ctx context.Context, slug string) error {
	if err := s.write(ctx, http.MethodPut, slug); err != nil {
		return err
	}
	s.setKey(slug, true)
	return nil
}

// SetNotBookmarked removes the saved gift on the server, then records
// the new status
func (s *Store) SetNotBookmarked(ctx context.Context, slug string) error {
	if err := s.write(ctx, http.MethodDelete, slug); err != nil {
		return err
	}
	s.setKey(slug, false)
	return nil
}

// Subscribe registers a callback for state changes and returns its
// unsubscribe function. The callback receives a snapshot, never the
// live map.
func (s *Store) Subscribe(fn func(state map[string]bool)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) write(ctx context.Context, method, slug string) error {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/user/bookmarks/"+slug, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if s.reauth != nil {
			if err := s.reauth(ctx); err != nil {
				return err
			}
		}
		return fmt.Errorf("not authenticated")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (s *Store) setKey(slug string, bookmarked bool) {
	s.mu.Lock()
	s.state[slug] = bookmarked
	snapshot := s.copyState()
	callbacks := make([]func(map[string]bool), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	if s.persistence != nil {
		// Best effort; the server remains the source of truth
		_ = s.persistence.Save(snapshot)
	}
	for _, fn := range callbacks {
		fn(snapshot)
	}
}

// copyState must be called with the lock held
func (s *Store) copyState() map[string]bool {
	snapshot := make(map[string]bool, len(s.state))
	for slug, bookmarked := range s.state {
		snapshot[slug] = bookmarked
	}
	return snapshot
}
