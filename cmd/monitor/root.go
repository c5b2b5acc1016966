package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"elderguard/internal/client"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions are shared by every subcommand.
type rootOptions struct {
	server      string
	identityURL string
	apiKey      string
	session     string
	verbose     bool
}

var opts rootOptions

func newRootCommand() *cobra.Command {
	// A missing .env file is normal.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "monitor",
		Short:         "ElderGuard command-line monitor",
		Long:          `Sign in to an ElderGuard backend, watch for detected falls and use the caregiver assistant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.server, "server", envOr("ELDERGUARD_SERVER", client.DefaultBaseURL), "ElderGuard backend base URL")
	flags.StringVar(&opts.identityURL, "identity-url", envOr("ELDERGUARD_IDENTITY_URL", client.DefaultIdentityURL), "Firebase Auth REST endpoint")
	flags.StringVar(&opts.apiKey, "api-key", os.Getenv("FIREBASE_WEB_API_KEY"), "Firebase web API key used to sign in")
	flags.StringVar(&opts.session, "session", defaultSessionPath(), "File holding the stored session")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newLoginCommand(),
		newLogoutCommand(),
		newWhoamiCommand(),
		newWatchCommand(),
		newSpeakCommand(),
		newResearchCommand(),
		newSOSCommand(),
	)

	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient builds the API client from the root flags and rehydrates the session.
func newClient() (*client.Client, error) {
	return client.New(client.Config{
		BaseURL:     opts.server,
		IdentityURL: opts.identityURL,
		APIKey:      opts.apiKey,
	}, client.NewSessionStore(opts.session), newLogger())
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, "elderguard", "session.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
