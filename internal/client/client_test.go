package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"elderguard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type clientFixtures struct {
	client *Client
	store  *SessionStore
	server *httptest.Server
}

func createTestClient(t *testing.T, handler http.HandlerFunc, session *Session) clientFixtures {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	if session != nil {
		require.NoError(t, store.Save(session))
	}

	c, err := New(Config{
		BaseURL:     server.URL,
		IdentityURL: server.URL + "/v1",
		APIKey:      "web-key",
	}, store, discardLogger())
	require.NoError(t, err)

	return clientFixtures{client: c, store: store, server: server}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func storedSession() *Session {
	return &Session{IDToken: "stored-token", Email: "fred@example.com", Role: entity.RoleFamily}
}

func TestNew_RehydratesSession(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, storedSession())

	assert.Equal(t, StateLoggedIn, fx.client.State())
	assert.Equal(t, storedSession(), fx.client.Session())
}

func TestNew_WithoutSession(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, nil)

	assert.Equal(t, StateLoggedOut, fx.client.State())
	assert.Nil(t, fx.client.Session())
}

func TestLogin_Success(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/accounts:signInWithPassword":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "web-key", r.URL.Query().Get("key"))

			var body signInRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, signInRequest{Email: "carol@example.com", Password: "secret123", ReturnSecureToken: true}, body)

			writeJSON(w, http.StatusOK, `{"idToken":"fresh-token","email":"carol@example.com","localId":"c1"}`)
		case "/api/profile":
			assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"uid":"c1","role":"caregiver"}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, nil)

	session, err := fx.client.Login(context.Background(), " carol@example.com ", "secret123")
	require.NoError(t, err)

	want := &Session{IDToken: "fresh-token", Email: "carol@example.com", Role: entity.RoleCaregiver}
	assert.Equal(t, want, session)
	assert.Equal(t, StateLoggedIn, fx.client.State())

	persisted, err := fx.store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, persisted)
}

func TestLogin_ProfileFailureDefaultsToFamily(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/profile" {
			writeJSON(w, http.StatusInternalServerError, `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"boom"}}`)

			return
		}
		writeJSON(w, http.StatusOK, `{"idToken":"tok","email":"fred@example.com"}`)
	}, nil)

	session, err := fx.client.Login(context.Background(), "fred@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFamily, session.Role)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		identity    string
		wantMessage string
	}{
		{
			name:        "short password",
			password:    "12345",
			wantMessage: "password must be at least 6 characters",
		},
		{
			name:        "invalid credentials",
			password:    "secret123",
			identity:    `{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`,
			wantMessage: "Invalid email or password",
		},
		{
			name:        "throttled",
			password:    "secret123",
			identity:    `{"error":{"code":400,"message":"TOO_MANY_ATTEMPTS_TRY_LATER : Access disabled"}}`,
			wantMessage: "Too many failed attempts. Try again later.",
		},
		{
			name:        "unknown account",
			password:    "secret123",
			identity:    `{"error":{"code":400,"message":"EMAIL_NOT_FOUND"}}`,
			wantMessage: "No account found with this email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, tt.identity)
			}, nil)

			session, err := fx.client.Login(context.Background(), "fred@example.com", tt.password)
			require.Error(t, err)
			assert.Nil(t, session)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.Equal(t, StateLoggedOut, fx.client.State())
		})
	}
}

func TestLogout(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, storedSession())

	require.NoError(t, fx.client.Logout())
	assert.Equal(t, StateLoggedOut, fx.client.State())

	persisted, err := fx.store.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestUnauthorizedExpiresSession(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":{"code":"TOKEN_EXPIRED","message":"Unauthorized: Token expired"}}`)
	}, storedSession())

	_, err := fx.client.Profile(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, StateLoggedOut, fx.client.State())

	persisted, err := fx.store.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)

	_, err = fx.client.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAPIErrorCarriesEnvelope(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"success":false,"error":{"code":"FORBIDDEN","message":"Forbidden: family role cannot perform this action"}}`)
	}, storedSession())

	_, err := fx.client.Speak(context.Background(), "hello")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
	assert.Equal(t, StateLoggedIn, fx.client.State())
}

func TestCheckFall(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantAlert bool
		wantErr   error
	}{
		{name: "fall", status: http.StatusOK, body: `{"success":true,"alert":true}`, wantAlert: true},
		{name: "bridge unreachable", status: http.StatusOK, body: `{"success":false,"alert":false}`},
		{name: "expired", status: http.StatusUnauthorized, body: `{}`, wantErr: ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/check-fall", r.URL.Path)
				assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
				writeJSON(w, tt.status, tt.body)
			}, storedSession())

			alert, err := fx.client.CheckFall(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlert, alert)
		})
	}
}

func TestResearch(t *testing.T) {
	fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gemini/research", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "metformin side effects", body["query"])

		writeJSON(w, http.StatusOK, `{"success":true,"data":{"text":"Nausea is common.","timestamp":"2026-03-14T09:30:00Z"}}`)
	}, storedSession())

	result, err := fx.client.Research(context.Background(), "metformin side effects")
	require.NoError(t, err)
	assert.Equal(t, "Nausea is common.", result.Text)
}

func TestTriggerSOS(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		wantBodyEmpty bool
	}{
		{name: "default message", wantBodyEmpty: true},
		{name: "custom message", message: "Help in the kitchen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/profile/sos", r.URL.Path)

				body, _ := io.ReadAll(r.Body)
				if tt.wantBodyEmpty {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, `{"message":"Help in the kitchen"}`, string(body))
				}

				writeJSON(w, http.StatusCreated, `{"success":true,"data":{"alert":{"id":"a1","type":"sos"},"dispatched":true},"message":"SOS alert dispatched"}`)
			}, storedSession())

			result, err := fx.client.TriggerSOS(context.Background(), tt.message)
			require.NoError(t, err)
			assert.True(t, result.Dispatched)
			assert.Equal(t, "a1", result.Alert.ID)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "logged-out", StateLoggedOut.String())
	assert.Equal(t, "authenticating", StateAuthenticating.String())
	assert.Equal(t, "logged-in", StateLoggedIn.String())
	assert.Equal(t, "State(9)", State(9).String())
}
