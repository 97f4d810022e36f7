package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

// storedCookie is the on-disk form of a single cookie.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitzero"`
}

// SessionJar is a minimal file-backed cookie jar. The riddle service
// identifies a play-through with a single session cookie set on /start;
// persisting it lets `riddl score` and `riddl history` see the same session
// in a fresh process. An empty path keeps the jar in memory only.
type SessionJar struct {
	mu      sync.Mutex
	path    string
	cookies map[string][]storedCookie // keyed by host
}

var _ http.CookieJar = (*SessionJar)(nil)

// NewSessionJar creates a jar backed by the given file, loading any cookies
// already stored there. A missing or unreadable file starts an empty jar.
func NewSessionJar(path string) *SessionJar {
	j := &SessionJar{
		path:    path,
		cookies: make(map[string][]storedCookie),
	}
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = json.Unmarshal(data, &j.cookies)
		}
	}
	return j
}

// SetCookies records cookies from a response and persists them.
func (j *SessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	host := u.Hostname()
	for _, c := range cookies {
		j.remove(host, c.Name)

		// MaxAge<0 is an explicit deletion (the server clears the session
		// cookie on /end and /reset).
		if c.MaxAge < 0 {
			continue
		}

		expires := c.Expires
		if c.MaxAge > 0 {
			expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}
		if !expires.IsZero() && time.Now().After(expires) {
			continue
		}

		j.cookies[host] = append(j.cookies[host], storedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Expires: expires,
		})
	}

	j.save()
}

// Cookies returns the unexpired cookies for the given URL's host.
func (j *SessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	var out []*http.Cookie
	for _, sc := range j.cookies[u.Hostname()] {
		if !sc.Expires.IsZero() && time.Now().After(sc.Expires) {
			continue
		}
		out = append(out, &http.Cookie{Name: sc.Name, Value: sc.Value})
	}
	return out
}

// Clear drops all cookies for the given URL's host and persists the result.
func (j *SessionJar) Clear(u *url.URL) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.cookies, u.Hostname())
	j.save()
}

// remove deletes a cookie by name. Caller holds the lock.
func (j *SessionJar) remove(host, name string) {
	kept := j.cookies[host][:0]
	for _, sc := range j.cookies[host] {
		if sc.Name != name {
			kept = append(kept, sc)
		}
	}
	if len(kept) == 0 {
		delete(j.cookies, host)
		return
	}
	j.cookies[host] = kept
}

// save writes the jar to disk best-effort. Caller holds the lock.
func (j *SessionJar) save() {
	if j.path == "" {
		return
	}
	data, err := json.Marshal(j.cookies)
	if err != nil {
		return
	}
	_ = os.WriteFile(j.path, data, 0o600)
}
