// Package cli implements the ptcg command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Sternrassler/ptcg-client/internal/config"
	"github.com/Sternrassler/ptcg-client/pkg/client"
	"github.com/Sternrassler/ptcg-client/pkg/logging"
	"github.com/Sternrassler/ptcg-client/pkg/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
	client *client.Client
	out    io.Writer

	openStore func(ctx context.Context, opts store.Options) (*store.Store, error)
}

// NewRootCommand builds the command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	return newRootCommand(&app{
		out:       out,
		openStore: store.Connect,
	})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ptcg",
		Short: "Query the Pokémon TCG API",
		Long: `ptcg queries the Pokémon TCG API for cards, sets and their taxonomies,
and can snapshot the whole catalog into Redis.

Results are printed as indented JSON on stdout.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./ptcg.yaml or ~/.config/ptcg/ptcg.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(a.cardCommand())
	rootCmd.AddCommand(a.setCommand())
	rootCmd.AddCommand(a.taxonomyCommands()...)
	rootCmd.AddCommand(a.syncCommand())
	rootCmd.AddCommand(a.storedCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	rootCmd := NewRootCommand(os.Stdout)
	rootCmd.Version = version

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize loads the configuration and creates the logger and client.
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		if _, err := logging.ParseLevel(a.logLevel); err != nil {
			return err
		}
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	logging.Setup(cfg.LoggingConfig())
	a.logger = logging.NewLogger("ptcg-cli")

	a.client, err = client.New(cfg.ClientConfig())
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	a.logger.Debug().
		Str("base_url", a.client.BaseURL()).
		Bool("api_key", cfg.API.APIKey != "").
		Msg("Client initialized")

	return nil
}
