package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"elderguard/internal/domain/entity"
	"elderguard/internal/errors"
	"elderguard/internal/usecase"
)

const (
	// DefaultBaseURL is the backend the monitor talks to when none is configured.
	DefaultBaseURL = "http://localhost:3001"
	// DefaultIdentityURL is the Firebase Auth REST endpoint root.
	DefaultIdentityURL = "https://identitytoolkit.googleapis.com/v1"

	defaultTimeout    = 10 * time.Second
	minPasswordLength = 6
)

var (
	// ErrSessionExpired is returned when the backend rejects the stored token.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrNotLoggedIn is returned by API calls made without a session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrLoginInProgress is returned when Login is called while another login runs.
	ErrLoginInProgress = errors.New("login already in progress")
)

// State is the client's position in the login flow.
type State int

const (
	StateLoggedOut State = iota
	StateAuthenticating
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged-out"
	case StateAuthenticating:
		return "authenticating"
	case StateLoggedIn:
		return "logged-in"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config points the client at the backend and the identity provider.
type Config struct {
	BaseURL     string
	IdentityURL string
	APIKey      string
	Timeout     time.Duration
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// Client holds the session and calls the ElderGuard API on its behalf.
type Client struct {
	cfg        Config
	httpClient *http.Client
	store      *SessionStore
	logger     *slog.Logger

	mu      sync.RWMutex
	state   State
	session *Session
}

// New creates a client and rehydrates any stored session.
func New(cfg Config, store *SessionStore, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.IdentityURL == "" {
		cfg.IdentityURL = DefaultIdentityURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.IdentityURL = strings.TrimRight(cfg.IdentityURL, "/")

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		store:      store,
		logger:     logger,
		state:      StateLoggedOut,
	}

	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	if session != nil {
		c.session = session
		c.state = StateLoggedIn
	}

	return c, nil
}

// State returns the current login state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Session returns a copy of the current session, or nil when logged out.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return nil
	}
	session := *c.session

	return &session
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	Email   string `json:"email"`
	LocalID string `json:"localId"`
}

type identityErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Login signs in with email and password, then asks the backend for the role.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(password) < minPasswordLength {
		return nil, errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	c.mu.Lock()
	if c.state == StateAuthenticating {
		c.mu.Unlock()

		return nil, ErrLoginInProgress
	}
	c.state = StateAuthenticating
	c.session = nil
	c.mu.Unlock()

	session, err := c.authenticate(ctx, email, password)
	if err != nil {
		c.setLoggedOut()

		return nil, err
	}

	if err := c.store.Save(session); err != nil {
		c.setLoggedOut()

		return nil, err
	}

	c.mu.Lock()
	c.session = session
	c.state = StateLoggedIn
	c.mu.Unlock()

	c.logger.Info("Logged in", slog.String("email", session.Email), slog.String("role", string(session.Role)))

	return session, nil
}

func (c *Client) authenticate(ctx context.Context, email, password string) (*Session, error) {
	signedIn, err := c.signIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := &Session{
		IDToken: signedIn.IDToken,
		Email:   signedIn.Email,
		Role:    entity.RoleFamily,
	}
	if session.Email == "" {
		session.Email = email
	}

	var profile entity.Profile
	if err := c.call(ctx, session.IDToken, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrSessionExpired
		}
		c.logger.Warn("Could not load profile, defaulting role", slog.Any("error", err))

		return session, nil
	}
	if profile.Role.IsValid() {
		session.Role = profile.Role
	}

	return session, nil
}

func (c *Client) signIn(ctx context.Context, email, password string) (*signInResponse, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := c.cfg.IdentityURL + "/accounts:signInWithPassword?key=" + url.QueryEscape(c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "network error, please check your connection")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var identityErr identityErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&identityErr)

		return nil, errors.New(signInErrorMessage(identityErr.Error.Message))
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode sign-in response")
	}
	if out.IDToken == "" {
		return nil, errors.New("sign-in response carried no token")
	}

	return &out, nil
}

// signInErrorMessage turns identity provider codes into user-facing text.
func signInErrorMessage(code string) string {
	// Codes may carry a suffix, e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : ..."
	code, _, _ = strings.Cut(code, " ")

	switch code {
	case "INVALID_LOGIN_CREDENTIALS", "INVALID_PASSWORD", "INVALID_EMAIL":
		return "Invalid email or password"
	case "EMAIL_NOT_FOUND":
		return "No account found with this email"
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return "Too many failed attempts. Try again later."
	case "USER_DISABLED":
		return "This account has been disabled"
	case "":
		return "Login failed. Please try again."
	default:
		return code
	}
}

// Logout forgets the session locally and on disk.
func (c *Client) Logout() error {
	c.setLoggedOut()

	return c.store.Clear()
}

func (c *Client) setLoggedOut() {
	c.mu.Lock()
	c.session = nil
	c.state = StateLoggedOut
	c.mu.Unlock()
}

// expire drops the session after the backend rejected its token.
func (c *Client) expire() {
	c.setLoggedOut()
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("Failed to clear expired session", slog.Any("error", err))
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues an authenticated request with the current session. A 401 ends the session.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	session := c.Session()
	if session == nil {
		return ErrNotLoggedIn
	}

	err := c.call(ctx, session.IDToken, method, path, in, out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		c.expire()

		return ErrSessionExpired
	}

	return err
}

// call sends a JSON request and decodes the data member of the envelope into out.
func (c *Client) call(ctx context.Context, token, method, path string, in, out any) error {
	resp, err := c.send(ctx, token, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrapf(err, "decode %s %s data", method, path)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, token, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	return resp, nil
}

// CheckFall polls the fall-detection proxy.
func (c *Client) CheckFall(ctx context.Context) (bool, error) {
	session := c.Session()
	if session == nil {
		return false, ErrNotLoggedIn
	}

	resp, err := c.send(ctx, session.IDToken, http.MethodGet, "/api/check-fall", nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.expire()

		return false, ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return false, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var body struct {
		Success bool `json:"success"`
		Alert   bool `json:"alert"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errors.Wrap(err, "decode check-fall response")
	}

	return body.Alert, nil
}

// Profile returns the caller's profile.
func (c *Client) Profile(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Research asks the assistant a medical question.
func (c *Client) Research(ctx context.Context, query string) (*usecase.ResearchResult, error) {
	var result usecase.ResearchResult
	if err := c.do(ctx, http.MethodPost, "/api/gemini/research", map[string]string{"query": query}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Speech is synthesized audio as returned by the backend.
type Speech struct {
	AudioBase64   string    `json:"audioBase64"`
	SampleRate    int       `json:"sampleRate"`
	Channels      int       `json:"channels"`
	BitsPerSample int       `json:"bitsPerSample"`
	Format        string    `json:"format"`
	Timestamp     time.Time `json:"timestamp"`
}

// Speak synthesizes text into PCM audio.
func (c *Client) Speak(ctx context.Context, text string) (*Speech, error) {
	var speech Speech
	if err := c.do(ctx, http.MethodPost, "/api/gemini/tts", map[string]string{"text": text}, &speech); err != nil {
		return nil, err
	}

	return &speech, nil
}

// TriggerSOS raises an emergency alert.
func (c *Client) TriggerSOS(ctx context.Context, message string) (*usecase.SOSResult, error) {
	var in any
	if message != "" {
		in = map[string]string{"message": message}
	}

	var result usecase.SOSResult
	if err := c.do(ctx, http.MethodPost, "/api/profile/sos", in, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
