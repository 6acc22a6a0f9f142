package theme

import (
	"errors"
	"net/http"
	"time"
)

// ErrStorageUnavailable is returned by Save when there is no response to
// write the cookie to.
var ErrStorageUnavailable = errors.New("theme storage unavailable")

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps the preference in a client-side cookie.
type CookieStore struct {
	name string
	w    http.ResponseWriter
	r    *http.Request
}

// NewCookieStore returns a Store reading from r and writing to w.
func NewCookieStore(name string, w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{name: name, w: w, r: r}
}

// Load returns the stored preference. Unknown values count as absent.
func (s *CookieStore) Load() (Preference, bool) {
	if s.r == nil {
		return "", false
	}
	cookie, err := s.r.Cookie(s.name)
	if err != nil {
		return "", false
	}
	p, err := ParsePreference(cookie.Value)
	if err != nil {
		return "", false
	}
	return p, true
}

// Save writes the preference cookie.
func (s *CookieStore) Save(p Preference) error {
	if s.w == nil {
		return ErrStorageUnavailable
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.name,
		Value:    string(p),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
