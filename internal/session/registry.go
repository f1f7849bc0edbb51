package session

import (
	"sync"
	"time"

	"github.com/traveldesk/travelbot/internal/model"
)

// Registry owns every per-chat dialogue record. Mutations for the same
// chat are serialized by a per-entry lock; different chats never contend
// beyond the lookup map itself.
type Registry struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

type entry struct {
	mu      sync.Mutex
	session model.Session
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[int64]*entry)}
}

func (r *Registry) get(chatID int64) *entry {
	r.mu.RLock()
	e, ok := r.entries[chatID]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok = r.entries[chatID]; ok {
		return e
	}
	e = &entry{session: model.Session{
		ChatID:   chatID,
		State:    model.Idle(),
		Language: model.DefaultLanguage,
		LastSeen: time.Now(),
	}}
	r.entries[chatID] = e
	return e
}

// WithChat runs fn with exclusive access to the chat's session, creating
// it lazily on first interaction. The lock is held for the duration of
// fn, which is what serializes concurrent events for one chat.
func (r *Registry) WithChat(chatID int64, fn func(s *model.Session) error) error {
	e := r.get(chatID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.LastSeen = time.Now()
	return fn(&e.session)
}

// Snapshot returns a copy of the chat's current session.
func (r *Registry) Snapshot(chatID int64) model.Session {
	e := r.get(chatID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Language returns the chat's locale without creating a session.
func (r *Registry) Language(chatID int64) model.Language {
	r.mu.RLock()
	e, ok := r.entries[chatID]
	r.mu.RUnlock()
	if !ok {
		return model.DefaultLanguage
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Language
}

// ExpireIdle resets sessions whose last activity is older than ttl,
// dropping any pending state and stored results. Returns the number of
// sessions reset.
func (r *Registry) ExpireIdle(ttl time.Duration) int64 {
	cutoff := time.Now().Add(-ttl)

	r.mu.RLock()
	entries := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	var reset int64
	for _, e := range entries {
		e.mu.Lock()
		stale := e.session.LastSeen.Before(cutoff) &&
			(e.session.State.Kind != model.StateIdle || e.session.Results != nil || e.session.Search != nil)
		if stale {
			e.session.State = model.Idle()
			e.session.Results = nil
			e.session.Search = nil
			reset++
		}
		e.mu.Unlock()
	}
	return reset
}
