package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/inventory/pkg/config"
	"github.com/ghuser/inventory/pkg/logger"
)

func testHandler(t *testing.T, wantPrincipal string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := PrincipalFromCtx(r.Context())
		if err != nil {
			t.Errorf("principal missing after auth: %v", err)
		}
		if p != wantPrincipal {
			t.Errorf("principal: got %q, want %q", p, wantPrincipal)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	creds := Credentials{User: "service", Password: "hunter2-hunter2", APIKey: "test-key"}

	t.Run("valid basic credentials pass with user principal", func(t *testing.T) {
		h := RequireAuth(creds, log)(testHandler(t, "service"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("service", "hunter2-hunter2")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}
	})

	t.Run("valid api key passes with api-key principal", func(t *testing.T) {
		h := RequireAuth(creds, log)(testHandler(t, "api-key"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-API-Key", "test-key")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}
	})

	rejected := func(t *testing.T, modify func(*http.Request)) {
		t.Helper()
		inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler must not be reached")
		})
		h := RequireAuth(creds, log)(inner)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		modify(req)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status: got %d, want 401", rec.Code)
		}
		if got := rec.Header().Get("WWW-Authenticate"); !strings.Contains(got, `Basic realm=`) {
			t.Fatalf("WWW-Authenticate: got %q", got)
		}
		if !strings.Contains(rec.Body.String(), "detail") {
			t.Fatalf("body: got %q, want detail message", rec.Body.String())
		}
	}

	t.Run("no credentials is rejected", func(t *testing.T) {
		rejected(t, func(*http.Request) {})
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		rejected(t, func(r *http.Request) { r.SetBasicAuth("service", "wrong") })
	})

	t.Run("wrong user is rejected", func(t *testing.T) {
		rejected(t, func(r *http.Request) { r.SetBasicAuth("intruder", "hunter2-hunter2") })
	})

	t.Run("wrong api key falls through to basic and is rejected", func(t *testing.T) {
		rejected(t, func(r *http.Request) { r.Header.Set("X-API-Key", "nope") })
	})

	t.Run("api key ignored when none configured", func(t *testing.T) {
		noKey := Credentials{User: "service", Password: "hunter2-hunter2"}
		inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler must not be reached")
		})
		h := RequireAuth(noKey, log)(inner)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-API-Key", "")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status: got %d, want 401", rec.Code)
		}
	})
}
