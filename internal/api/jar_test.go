package api

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestJarRoundTrip(t *testing.T) {
	jar := NewSessionJar("")
	u := mustParse(t, "http://localhost:8000/start")

	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "abc-123", MaxAge: 3600}})

	got := jar.Cookies(mustParse(t, "http://localhost:8000/answer"))
	require.Len(t, got, 1)
	assert.Equal(t, "session_id", got[0].Name)
	assert.Equal(t, "abc-123", got[0].Value)
}

func TestJarPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	u := mustParse(t, "http://localhost:8000/")

	jar := NewSessionJar(path)
	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "persisted", MaxAge: 3600}})

	reloaded := NewSessionJar(path)
	got := reloaded.Cookies(u)
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].Value)
}

func TestJarDeletionViaNegativeMaxAge(t *testing.T) {
	// Go's Set-Cookie parser maps "Max-Age: 0" (the server's delete_cookie)
	// to MaxAge -1.
	jar := NewSessionJar("")
	u := mustParse(t, "http://localhost:8000/")

	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "abc", MaxAge: 3600}})
	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "", MaxAge: -1}})

	assert.Empty(t, jar.Cookies(u))
}

func TestJarExpiredCookiesNotReturned(t *testing.T) {
	jar := NewSessionJar("")
	u := mustParse(t, "http://localhost:8000/")

	jar.SetCookies(u, []*http.Cookie{{
		Name:    "session_id",
		Value:   "old",
		Expires: time.Now().Add(-time.Hour),
	}})

	assert.Empty(t, jar.Cookies(u))
}

func TestJarReplacesCookieByName(t *testing.T) {
	jar := NewSessionJar("")
	u := mustParse(t, "http://localhost:8000/")

	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "first", MaxAge: 3600}})
	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "second", MaxAge: 3600}})

	got := jar.Cookies(u)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Value)
}

func TestJarHostsAreIsolated(t *testing.T) {
	jar := NewSessionJar("")
	jar.SetCookies(mustParse(t, "http://localhost:8000/"), []*http.Cookie{
		{Name: "session_id", Value: "local", MaxAge: 3600},
	})

	assert.Empty(t, jar.Cookies(mustParse(t, "http://example.com/")))
}

func TestJarClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	u := mustParse(t, "http://localhost:8000/")

	jar := NewSessionJar(path)
	jar.SetCookies(u, []*http.Cookie{{Name: "session_id", Value: "abc", MaxAge: 3600}})
	jar.Clear(u)

	assert.Empty(t, jar.Cookies(u))
	assert.Empty(t, NewSessionJar(path).Cookies(u), "clear must persist")
}

func TestJarIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	jar := NewSessionJar(path)
	assert.Empty(t, jar.Cookies(mustParse(t, "http://localhost:8000/")))
}
