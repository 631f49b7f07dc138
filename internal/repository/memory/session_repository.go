package memory

import (
	"time"

	"bbp-finder-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds live UI sessions in memory. Nothing here is
// persisted; an expired or deleted session is gone, credential included.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Expired sessions are purged at a fraction of the TTL so abandoned
	// credentials do not linger much past expiry.
	purge := ttl / 6
	if purge < time.Minute {
		purge = time.Minute
	}
	c := cache.New(ttl, purge)
	return &SessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the session and refreshes its expiry. Each UI action goes
// through Save, so active sessions stay alive.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
