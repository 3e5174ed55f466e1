package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mharmon/rchub/internal/hub"
)

func TestWhoami(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profiles/me" {
			t.Errorf("path = %q, want /profiles/me", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, hub.Profile{ID: 42, Name: "Ada"})
	}))
	defer srv.Close()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("RC_TOKEN", "testtoken")
	t.Setenv("RC_API_URL", srv.URL)

	if err := runWhoami(); err != nil {
		t.Fatalf("whoami: %v", err)
	}
}

func TestWhoamiNoToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RC_TOKEN", "")

	if err := runWhoami(); err == nil {
		t.Fatal("expected error with no token")
	}
}
