package httpserver

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/selection"
)

const (
	sessionCookie = "sid"
	cartCookie    = "cart_id"
)

// sessionStore keeps one selection.State per browser session, keyed by the
// sid cookie. The store lock also serializes access to each state, which is
// all the coordination the single-user flow needs.
type sessionStore struct {
	mu       sync.Mutex
	index    *catalog.Index
	sessions map[string]*selection.State
}

func newSessionStore(ix *catalog.Index) *sessionStore {
	return &sessionStore{index: ix, sessions: map[string]*selection.State{}}
}

// with runs fn against the caller's session state, creating the session and
// its cookie on first contact.
func (ss *sessionStore) with(w http.ResponseWriter, r *http.Request, fn func(st *selection.State)) {
	id := ""
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		id = c.Value
	}
	if id == "" {
		id = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	st, ok := ss.sessions[id]
	if !ok {
		st = selection.New(ss.index)
		ss.sessions[id] = st
	}
	fn(st)
}

// cartID returns the browser's cart id, minting one when create is set.
func cartID(w http.ResponseWriter, r *http.Request, create bool) (uuid.UUID, bool) {
	if c, err := r.Cookie(cartCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id, true
		}
	}
	if !create {
		return uuid.Nil, false
	}
	id := uuid.New()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 30,
	})
	return id, true
}
