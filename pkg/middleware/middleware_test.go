package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-rating/pkg/apperror"
	"movie-rating/pkg/metrics"
	"movie-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeAuth struct {
	tokens map[string]utils.Identity
	err    error
}

func (f fakeAuth) Authenticate(ctx context.Context, signed string) (utils.Identity, error) {
	if f.err != nil {
		return utils.Anonymous(), f.err
	}
	identity, ok := f.tokens[signed]
	if !ok {
		return utils.Anonymous(), apperror.ErrUnauthorized
	}
	return identity, nil
}

var alice = utils.Identity{UserID: 1, Username: "alice"}

func whoami(t *testing.T) (http.Handler, *utils.Identity) {
	t.Helper()
	var seen utils.Identity
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	}), &seen
}

func TestLoadSession(t *testing.T) {
	auth := fakeAuth{tokens: map[string]utils.Identity{"good": alice}}

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    utils.Identity
	}{
		{"no token", func(r *http.Request) {}, utils.Anonymous()},
		{"bearer token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, alice},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer good") }, alice},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "good"}) }, alice},
		{"unknown token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }, utils.Anonymous()},
		{"wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }, utils.Anonymous()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, seen := whoami(t)
			req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			LoadSession(auth, zap.NewNop())(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, *seen)
		})
	}
}

func TestLoadSession_BackendErrorStaysAnonymous(t *testing.T) {
	next, seen := whoami(t)
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	LoadSession(fakeAuth{err: errors.New("db down")}, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, seen.Authenticated())
}

func TestAuthSession(t *testing.T) {
	next, _ := whoami(t)
	handler := AuthSession(zap.NewNop())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/movies", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must log in")

	req := httptest.NewRequest(http.MethodPost, "/api/movies", nil)
	req = req.WithContext(utils.SetIdentity(req.Context(), alice))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	Recover(zap.NewNop())(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestLogger_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})
	rec := httptest.NewRecorder()

	Logger(zap.NewNop())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestLogger_RecordsRouteAndUser(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	auth := fakeAuth{tokens: map[string]utils.Identity{"good": alice}}

	r := chi.NewRouter()
	r.Use(Logger(zap.New(core)))
	r.Use(LoadSession(auth, zap.NewNop()))
	r.Get("/api/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/7", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/api/movies/8", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP request").All()
	if assert.Len(t, entries, 2) {
		first := entries[0].ContextMap()
		assert.Equal(t, "/api/movies/{id}", first["route"])
		assert.Equal(t, "/api/movies/7", first["path"])
		assert.Equal(t, int64(1), first["user_id"])

		_, hasUser := entries[1].ContextMap()["user_id"]
		assert.False(t, hasUser)
	}
}

func TestLogger_WarnsOnClientErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(Logger(zap.New(core)))
	r.Get("/api/movies", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "unmatched", entries[0].ContextMap()["route"])
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics())
	r.Get("/api/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/movies/{id}", "404")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/movies/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/movies/43", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
