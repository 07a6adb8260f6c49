// Package cmd wires the RF Online client into a CLI: config, storage, API
// client and session store behind role-gated subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/api"
	"github.com/rfonline/rfclient/guard"
	"github.com/rfonline/rfclient/internal/config"
	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/session"
	"github.com/rfonline/rfclient/storage"
	"github.com/rfonline/rfclient/token"
)

// app is the wired-up client shared by every subcommand.
type app struct {
	cfg     config.Config
	client  *api.Client
	session *session.Store
}

var current *app

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "rfclient",
	Short:         "RF Online gym-training client",
	Long:          "rfclient talks to the RF Online gym-training service: sessions, trainer and client listings, workout blocks, training plans, comments and subscription payments.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

		a, err := newApp()
		if err != nil {
			return err
		}
		current = a
		current.session.Initialize()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.session.Close()
		}
	},
}

func newApp() (*app, error) {
	cfg := config.New()

	client := api.New(cfg.GetAPIBaseURL(), api.WithTimeout(cfg.GetHTTPTimeout()))

	sess, err := session.New(
		storage.NewFile(cfg.GetStorageFile()),
		client,
		session.WithNavigator(consoleNavigator{}),
	)
	if err != nil {
		return nil, err
	}

	// The session store feeds the bearer token back into the client.
	client.SetTokenSource(sess)

	return &app{cfg: cfg, client: client, session: sess}, nil
}

// consoleNavigator is the CLI's stand-in for view navigation.
type consoleNavigator struct{}

func (consoleNavigator) ShowHome() {
	fmt.Println("Sesión iniciada.")
}

func (consoleNavigator) ShowLogin() {
	fmt.Println("Sesión cerrada.")
}

// requireRoles gates a command on the session and its allowed roles. An
// empty role list admits any authenticated user.
func requireRoles(cmd *cobra.Command, roles ...token.Role) error {
	decision := guard.Resolve(current.session.Snapshot(), cmd.CommandPath(), roles)
	switch decision.Outcome {
	case guard.OutcomeAllow:
		return nil
	case guard.OutcomeRedirectLogin:
		return errors.Wrapf(errors.ErrNoSession, "run 'rfclient login' first")
	case guard.OutcomeDeny:
		return errors.ErrAuthorizationDenied
	}
	return errors.ErrInternal
}

// ExecuteContext runs the root command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
