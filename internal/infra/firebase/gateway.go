// Package firebase owns the Firebase Admin app and the handles derived from it.
package firebase

import (
	"context"
	"encoding/json"
	"encoding/pem"
	"log/slog"
	"os"
	"strings"

	"elderguard/config"
	"elderguard/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrGatewayNotInitialized is returned when a handle is requested from an unbuilt gateway.
var ErrGatewayNotInitialized = errors.New("firebase admin not initialized: construct the gateway at startup first")

const tokenURI = "https://oauth2.googleapis.com/token"

// Credentials are the three service-account values the gateway needs.
type Credentials struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// LoadCredentials validates the configured service account. Escaped "\n"
// sequences in the private key are expanded to real newlines.
func LoadCredentials(cfg config.FirebaseConfig) (Credentials, error) {
	creds := Credentials{
		ProjectID:   strings.TrimSpace(cfg.ProjectID),
		ClientEmail: strings.TrimSpace(cfg.ClientEmail),
		PrivateKey:  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
	}

	var missing []string
	if creds.ProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if creds.ClientEmail == "" {
		missing = append(missing, "FIREBASE_CLIENT_EMAIL")
	}
	if strings.TrimSpace(creds.PrivateKey) == "" {
		missing = append(missing, "FIREBASE_PRIVATE_KEY")
	}
	if len(missing) > 0 {
		return Credentials{}, errors.Errorf("firebase environment variables are not set: %s", strings.Join(missing, ", "))
	}

	if !strings.Contains(creds.ClientEmail, "@") {
		return Credentials{}, errors.New("FIREBASE_CLIENT_EMAIL is not a service account email")
	}

	if block, _ := pem.Decode([]byte(creds.PrivateKey)); block == nil {
		return Credentials{}, errors.New("FIREBASE_PRIVATE_KEY is not a PEM encoded key")
	}

	return creds, nil
}

// JSON renders the credentials as a service-account key file.
func (c Credentials) JSON() ([]byte, error) {
	b, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   c.ProjectID,
		"client_email": c.ClientEmail,
		"private_key":  c.PrivateKey,
		"token_uri":    tokenURI,
	})

	return b, errors.WithStack(err)
}

// Gateway holds the Firebase Admin handles. It is built once at startup and injected.
type Gateway struct {
	projectID string
	auth      *auth.Client
	firestore *firestore.Client
	messaging *messaging.Client
}

// GatewayParams holds dependencies for the gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewGateway validates credentials and initializes the Admin SDK. Any error here is fatal.
func NewGateway(params GatewayParams) (*Gateway, error) {
	creds, err := LoadCredentials(params.Config.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "firebase admin initialization failed")
	}

	if host := params.Config.Firebase.EmulatorHost; host != "" {
		if err := os.Setenv("FIRESTORE_EMULATOR_HOST", host); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	keyJSON, err := creds.JSON()
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: creds.ProjectID}, option.WithCredentialsJSON(keyJSON))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	fsClient, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	msgClient, err := app.Messaging(params.Ctx)
	if err != nil {
		_ = fsClient.Close()

		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	gw := &Gateway{
		projectID: creds.ProjectID,
		auth:      authClient,
		firestore: fsClient,
		messaging: msgClient,
	}

	params.Logger.Info("Firebase Admin SDK initialized",
		slog.String("project_id", creds.ProjectID),
		slog.String("service_account", creds.ClientEmail),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gw.Close()
		},
	})

	return gw, nil
}

// ProjectID returns the Firebase project the gateway is bound to.
func (g *Gateway) ProjectID() string {
	if g == nil {
		return ""
	}

	return g.projectID
}

// Auth returns the identity client.
func (g *Gateway) Auth() (*auth.Client, error) {
	if g == nil || g.auth == nil {
		return nil, ErrGatewayNotInitialized
	}

	return g.auth, nil
}

// Firestore returns the document store client.
func (g *Gateway) Firestore() (*firestore.Client, error) {
	if g == nil || g.firestore == nil {
		return nil, ErrGatewayNotInitialized
	}

	return g.firestore, nil
}

// Messaging returns the push messaging client.
func (g *Gateway) Messaging() (*messaging.Client, error) {
	if g == nil || g.messaging == nil {
		return nil, ErrGatewayNotInitialized
	}

	return g.messaging, nil
}

// Initialized reports whether the gateway holds live handles.
func (g *Gateway) Initialized() bool {
	return g != nil && g.auth != nil && g.firestore != nil
}

// Close releases the Firestore connection.
func (g *Gateway) Close() error {
	if g == nil || g.firestore == nil {
		return nil
	}

	return errors.WithStack(g.firestore.Close())
}

// FirestoreClient adapts the gateway for Fx consumers that need the raw client.
func FirestoreClient(g *Gateway) (*firestore.Client, error) {
	return g.Firestore()
}

// AuthClient adapts the gateway for Fx consumers that need the raw client.
func AuthClient(g *Gateway) (*auth.Client, error) {
	return g.Auth()
}

// MessagingClient adapts the gateway for Fx consumers that need the raw client.
func MessagingClient(g *Gateway) (*messaging.Client, error) {
	return g.Messaging()
}
