package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apitrail/apitrail/internal/catalog"
	"github.com/apitrail/apitrail/internal/service"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/internal/store/drivers/sqlite"
	"github.com/apitrail/apitrail/pkg/cryptox"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/jwtx"
	"github.com/apitrail/apitrail/pkg/trailsdk"
	"github.com/stretchr/testify/require"
)

const testIssuer = "apitrail-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func init() {
	// These tests hammer the credential endpoints far past the production
	// budgets. The limiter has its own tests.
	generous := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.StrictLimit = generous
	httpx.ModerateLimit = generous
	httpx.PublicLimit = generous
}

func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	levels, err := catalog.Load()
	require.NoError(t, err)

	r := NewRouter(signer, "test", st, slog.New(slog.DiscardHandler))
	r.Accounts = &service.AccountService{
		Store:      st,
		Hasher:     cryptox.NewHasher(cryptox.DefaultParams()),
		Sessions:   signer,
		Issuer:     testIssuer,
		SessionTTL: time.Hour,
	}
	r.Progress = &service.ProgressService{Store: st}
	r.Levels = levels
	r.ApplyRoutes()

	return r, st
}

// doJSON serves one request through the full router, middleware included.
func doJSON(t *testing.T, r *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, r *Router, username, email string) trailsdk.AuthResponse {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/auth/register", "", trailsdk.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp trailsdk.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("creates an account", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/auth/register", "", trailsdk.RegisterRequest{
			Username: "alice",
			Email:    "Alice@Example.com",
			Password: "hunter2hunter2",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp trailsdk.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.User.ID)
		require.Equal(t, "alice", resp.User.Username)
		require.Equal(t, "alice@example.com", resp.User.Email)

		// The profile never carries the hash
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr trailsdk.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		require.Equal(t, trailsdk.ErrorCodeValidation, apiErr.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cases := []struct {
			name string
			req  trailsdk.RegisterRequest
		}{
			{"no username", trailsdk.RegisterRequest{Email: "a@b.c", Password: "pw"}},
			{"no email", trailsdk.RegisterRequest{Username: "a", Password: "pw"}},
			{"no password", trailsdk.RegisterRequest{Username: "a", Email: "a@b.c"}},
			{"blank username", trailsdk.RegisterRequest{Username: "   ", Email: "a@b.c", Password: "pw"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := doJSON(t, r, http.MethodPost, "/auth/register", "", tc.req)
				require.Equal(t, http.StatusBadRequest, rec.Code)

				var apiErr trailsdk.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				require.Equal(t, trailsdk.ErrorCodeValidation, apiErr.Code)
				require.Contains(t, apiErr.Message, "required")
			})
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/auth/register", "", trailsdk.RegisterRequest{
			Username: "alice",
			Email:    "fresh@example.com",
			Password: "hunter2hunter2",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr trailsdk.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		require.Equal(t, trailsdk.ErrorCodeConflict, apiErr.Code)
		require.Contains(t, apiErr.Message, "username")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/auth/register", "", trailsdk.RegisterRequest{
			Username: "fresh",
			Email:    "ALICE@example.com",
			Password: "hunter2hunter2",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr trailsdk.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		require.Equal(t, trailsdk.ErrorCodeConflict, apiErr.Code)
		require.Contains(t, apiErr.Message, "email")
	})
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	registered := registerUser(t, r, "alice", "alice@example.com")

	t.Run("returns a token", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/auth/login", "", trailsdk.LoginRequest{
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp trailsdk.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		require.Equal(t, registered.User.ID, resp.User.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		unknownRec := doJSON(t, r, http.MethodPost, "/auth/login", "", trailsdk.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter2hunter2",
		})
		wrongRec := doJSON(t, r, http.MethodPost, "/auth/login", "", trailsdk.LoginRequest{
			Email:    "alice@example.com",
			Password: "not the password",
		})

		require.Equal(t, http.StatusUnauthorized, unknownRec.Code)
		require.Equal(t, http.StatusUnauthorized, wrongRec.Code)
		require.Equal(t, unknownRec.Body.String(), wrongRec.Body.String())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/auth/login", "", trailsdk.LoginRequest{
			Email: "alice@example.com",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMeEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("returns own profile", func(t *testing.T) {
		auth := registerUser(t, r, "alice", "alice@example.com")

		rec := doJSON(t, r, http.MethodGet, "/auth/me", auth.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var profile trailsdk.UserProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		require.Equal(t, auth.User.ID, profile.ID)
		require.Equal(t, "alice", profile.Username)
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("every bad token yields the same body", func(t *testing.T) {
		otherSigner, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"), testIssuer)
		require.NoError(t, err)
		forged, err := otherSigner.Sign(jwtx.NewSessionClaims("someone", "someone", testIssuer, time.Hour, time.Now()))
		require.NoError(t, err)

		signer, err := jwtx.NewHS256(testSecret, testIssuer)
		require.NoError(t, err)
		expired, err := signer.Sign(jwtx.NewSessionClaims("someone", "someone", testIssuer, -time.Hour, time.Now().Add(-2*time.Hour)))
		require.NoError(t, err)

		tokens := map[string]string{
			"no token":      "",
			"garbage":       "not-a-jwt",
			"wrong secret":  forged,
			"expired token": expired,
		}

		var bodies []string
		for name, token := range tokens {
			t.Run(name, func(t *testing.T) {
				rec := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
				require.Equal(t, http.StatusUnauthorized, rec.Code)
				require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
				bodies = append(bodies, rec.Body.String())
			})
		}
		for i := 1; i < len(bodies); i++ {
			require.Equal(t, bodies[0], bodies[i])
		}
	})

	t.Run("delete removes the account", func(t *testing.T) {
		auth := registerUser(t, r, "bob", "bob@example.com")

		rec := doJSON(t, r, http.MethodDelete, "/auth/me", auth.Token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Empty(t, rec.Body.String())

		// The token still verifies, but the account is gone
		rec = doJSON(t, r, http.MethodGet, "/auth/me", auth.Token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, r, http.MethodDelete, "/auth/me", auth.Token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProgressEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("starts at level one", func(t *testing.T) {
		auth := registerUser(t, r, "alice", "alice@example.com")

		rec := doJSON(t, r, http.MethodGet, "/progress", auth.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var progress trailsdk.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
		require.Equal(t, auth.User.ID, progress.UserID)
		require.Equal(t, 1, progress.CurrentLevel)
		require.Zero(t, progress.Points)

		// Empty set serializes as [], never null
		require.Contains(t, rec.Body.String(), `"completed_levels":[]`)
	})

	t.Run("put replaces the entry", func(t *testing.T) {
		auth := registerUser(t, r, "bob", "bob@example.com")

		rec := doJSON(t, r, http.MethodPut, "/progress", auth.Token, trailsdk.ProgressRequest{
			CurrentLevel:    3,
			CompletedLevels: []int{2, 1, 2},
			Points:          125,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var progress trailsdk.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
		require.Equal(t, 3, progress.CurrentLevel)
		require.Equal(t, []int{1, 2}, progress.CompletedLevels)
		require.Equal(t, 125, progress.Points)

		// Replacement may also regress; the server does not police direction
		rec = doJSON(t, r, http.MethodPut, "/progress", auth.Token, trailsdk.ProgressRequest{
			CurrentLevel:    1,
			CompletedLevels: []int{},
			Points:          0,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/progress", auth.Token, nil)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
		require.Equal(t, 1, progress.CurrentLevel)
		require.Empty(t, progress.CompletedLevels)
		require.Zero(t, progress.Points)
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		auth := registerUser(t, r, "carol", "carol@example.com")

		cases := []struct {
			name string
			req  trailsdk.ProgressRequest
		}{
			{"zero level", trailsdk.ProgressRequest{CurrentLevel: 0, Points: 10}},
			{"negative level in set", trailsdk.ProgressRequest{CurrentLevel: 1, CompletedLevels: []int{-1}}},
			{"negative points", trailsdk.ProgressRequest{CurrentLevel: 1, Points: -10}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := doJSON(t, r, http.MethodPut, "/progress", auth.Token, tc.req)
				require.Equal(t, http.StatusBadRequest, rec.Code)

				var apiErr trailsdk.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				require.Equal(t, trailsdk.ErrorCodeValidation, apiErr.Code)
			})
		}
	})

	t.Run("users only see their own progress", func(t *testing.T) {
		first := registerUser(t, r, "dave", "dave@example.com")
		second := registerUser(t, r, "erin", "erin@example.com")

		rec := doJSON(t, r, http.MethodPut, "/progress", first.Token, trailsdk.ProgressRequest{
			CurrentLevel: 5, CompletedLevels: []int{1, 2, 3, 4}, Points: 300,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/progress", second.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var progress trailsdk.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
		require.Equal(t, second.User.ID, progress.UserID)
		require.Equal(t, 1, progress.CurrentLevel)
		require.Zero(t, progress.Points)
	})

	t.Run("deleted account gets not found", func(t *testing.T) {
		auth := registerUser(t, r, "frank", "frank@example.com")

		rec := doJSON(t, r, http.MethodDelete, "/auth/me", auth.Token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/progress", auth.Token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, r, http.MethodPut, "/progress", auth.Token, trailsdk.ProgressRequest{
			CurrentLevel: 2, Points: 50,
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/progress", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLevelsEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("lists the catalog in order", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/levels", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp trailsdk.ListLevelsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Levels)
		require.Equal(t, len(resp.Levels), resp.Count)
		require.Equal(t, 1, resp.Levels[0].ID)

		// Summaries stay compact; the full lesson has the steps
		require.NotContains(t, rec.Body.String(), "instruction")
	})

	t.Run("returns one full level", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/levels/1", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var level trailsdk.Level
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &level))
		require.Equal(t, 1, level.ID)
		require.NotEmpty(t, level.Title)
		require.NotEmpty(t, level.KeyPoints)
		require.NotEmpty(t, level.Steps)
	})

	t.Run("unknown level", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/levels/999", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var apiErr trailsdk.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		require.Equal(t, trailsdk.ErrorCodeNotFound, apiErr.Code)
	})

	t.Run("invalid level id", func(t *testing.T) {
		for _, path := range []string{"/levels/abc", "/levels/0", "/levels/-1"} {
			rec := doJSON(t, r, http.MethodGet, path, "", nil)
			require.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("health reports OK", func(t *testing.T) {
		r, _ := newTestRouter(t)

		rec := doJSON(t, r, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health trailsdk.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		require.Equal(t, "OK", health.Status)
		require.NotEmpty(t, health.Uptime)
		require.Equal(t, "test", health.Version)
		require.Nil(t, health.Checks)
	})

	t.Run("readyz reflects the store", func(t *testing.T) {
		r, st := newTestRouter(t)

		rec := doJSON(t, r, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health trailsdk.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		require.Equal(t, "OK", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)

		require.NoError(t, st.Close())

		rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		require.Equal(t, "degraded", health.Status)
	})
}
