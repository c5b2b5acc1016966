package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"elderguard/internal/client"
	"elderguard/internal/util"

	"github.com/go-extras/cobraflags"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	emailFlag    = "email"
	passwordFlag = "password"
	outputFlag   = "output"
	messageFlag  = "message"
)

var loginFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Account email (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Account password; read from stdin when empty",
	},
}

var speakFlags = map[string]cobraflags.Flag{
	outputFlag: &cobraflags.StringFlag{
		Name:  outputFlag,
		Value: "speech.wav",
		Usage: "WAV file to write",
	},
}

var sosFlags = map[string]cobraflags.Flag{
	messageFlag: &cobraflags.StringFlag{
		Name:  messageFlag,
		Value: "",
		Usage: "Optional message sent with the alert",
	},
}

func newLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE:  loginCommand,
	}
	cobraflags.RegisterMap(cmd, loginFlags)

	return cmd
}

func loginCommand(cmd *cobra.Command, _ []string) error {
	email := loginFlags[emailFlag].GetString()
	if email == "" {
		return errors.New("--email is required")
	}

	password := loginFlags[passwordFlag].GetString()
	if password == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return errors.Wrap(err, "read password")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	session, err := c.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", session.Email, session.Role)

	return nil
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session and profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loggedInClient()
			if err != nil {
				return err
			}

			session := c.Session()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Email: %s\nRole:  %s\n", session.Email, session.Role)

			profile, err := c.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Posture tracking: %t\nAlert dispatch:   %t\n", profile.PostureTracking, profile.AlertDispatch)

			return nil
		},
	}
}

func newWatchCommand() *cobra.Command {
	var fallInterval, postureInterval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll for falls and rotate the posture display until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loggedInClient()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			var lastAlerting bool
			monitor := client.NewMonitor(c, newLogger(),
				client.WithIntervals(fallInterval, postureInterval),
				client.WithOnChange(func(s client.Snapshot) {
					if s.Alerting && !lastAlerting {
						fmt.Fprintf(out, "[%s] !!! %s !!!\n", time.Now().Format(time.TimeOnly), client.ActionFallDetected)
					}
					lastAlerting = s.Alerting
					fmt.Fprintf(out, "[%s] action=%s alert=%t\n", time.Now().Format(time.TimeOnly), s.Action, s.Alerting)
				}),
			)

			fmt.Fprintf(out, "Watching as %s, press Ctrl+C to stop\n", c.Session().Email)

			return monitor.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&fallInterval, "fall-interval", client.DefaultFallInterval, "Fall detection poll period")
	cmd.Flags().DurationVar(&postureInterval, "posture-interval", client.DefaultPostureInterval, "Posture display rotation period")

	return cmd
}

func newSpeakCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak <text>",
		Short: "Synthesize text into a WAV file, or speak it locally when the service fails",
		Args:  cobra.MinimumNArgs(1),
		RunE:  speakCommand,
	}
	cobraflags.RegisterMap(cmd, speakFlags)

	return cmd
}

func speakCommand(cmd *cobra.Command, args []string) error {
	c, err := loggedInClient()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	speech, err := c.Speak(cmd.Context(), text)
	if err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Speech service failed: %v\n", err)

		return speakLocally(cmd.Context(), text, cmd.OutOrStdout())
	}

	pcm, err := base64.StdEncoding.DecodeString(speech.AudioBase64)
	if err != nil || len(pcm) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Speech service returned no audio")

		return speakLocally(cmd.Context(), text, cmd.OutOrStdout())
	}

	wav := util.PCMToWAV(pcm, speech.SampleRate, speech.Channels)
	path := speakFlags[outputFlag].GetString()
	if err := os.WriteFile(path, wav, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %d Hz)\n", path, util.FormatBytes(int64(len(wav))), speech.SampleRate)

	return nil
}

func newResearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "research <question>",
		Short: "Ask the medical research assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loggedInClient()
			if err != nil {
				return err
			}

			result, err := c.Research(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)

			return nil
		},
	}
}

func newSOSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sos",
		Short: "Raise an emergency alert",
		Args:  cobra.NoArgs,
		RunE:  sosCommand,
	}
	cobraflags.RegisterMap(cmd, sosFlags)

	return cmd
}

func sosCommand(cmd *cobra.Command, _ []string) error {
	c, err := loggedInClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	result, err := c.TriggerSOS(ctx, sosFlags[messageFlag].GetString())
	if err != nil {
		return err
	}

	status := "recorded"
	if result.Dispatched {
		status = "dispatched"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "SOS alert %s (%s)\n", status, result.Alert.ID)

	return nil
}

func loggedInClient() (*client.Client, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	if c.State() != client.StateLoggedIn {
		return nil, errors.New("not logged in, run `monitor login` first")
	}

	return c, nil
}
