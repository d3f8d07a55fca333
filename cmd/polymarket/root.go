package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/d5c5ceb0/polymarket-cli/internal/app"
	"github.com/d5c5ceb0/polymarket-cli/internal/config"
	"github.com/d5c5ceb0/polymarket-cli/internal/keys"
	"github.com/d5c5ceb0/polymarket-cli/internal/keystore"
	"github.com/d5c5ceb0/polymarket-cli/internal/logger"
	"github.com/d5c5ceb0/polymarket-cli/internal/output"
	apperrors "github.com/d5c5ceb0/polymarket-cli/pkg/errors"
)

// cli carries process dependencies and the state built by the root pre-run
type cli struct {
	cfg       *config.Config
	homeDir   func() (string, error)
	lookupEnv func(string) (string, bool)
	stdout    io.Writer
	stderr    io.Writer

	flagPrivateKey string
	flagOutput     string
	flagVerbose    bool

	// privateKey is nil unless --private-key was given
	privateKey *string
	printer    *output.Printer
	wallets    *app.WalletService
}

// newRootCmd wires the CLI surface. Persistent flags override the
// environment-derived config in the pre-run, which also builds the
// wallet service shared by every subcommand.
func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "polymarket",
		Short:         "Polymarket command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.flagPrivateKey, "private-key", "", "Private key to use instead of env or config file")
	root.PersistentFlags().StringVarP(&c.flagOutput, "output", "o", c.cfg.Output, "Output format: table|json")
	root.PersistentFlags().BoolVar(&c.flagVerbose, "verbose", c.cfg.Verbose, "Verbose logging to stderr")

	root.AddCommand(newWalletCmd(c))

	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg := *c.cfg
	cfg.Output = c.flagOutput
	cfg.Verbose = c.flagVerbose
	if err := cfg.Validate(); err != nil {
		return apperrors.InvalidArgument(err.Error())
	}

	warnings := cfg.SanitizeLogging()
	if err := logger.Init(c.stderr, cfg.EffectiveLogLevel(), cfg.LogFormat); err != nil {
		return apperrors.InvalidArgument(err.Error())
	}
	ctx := logger.WithCommand(cmd.Context(), cmd.CommandPath())
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return apperrors.InvalidArgument(err.Error())
	}
	c.printer = output.NewPrinter(format, c.stdout)

	if cmd.Flags().Changed("private-key") {
		key := c.flagPrivateKey
		c.privateKey = &key
	}

	store := keystore.New(keystore.WithHomeDir(c.homeDir))
	resolver := keys.NewResolver(store, keys.WithLookupEnv(c.lookupEnv))
	c.wallets = app.NewWalletService(store, resolver)

	cmd.SetContext(ctx)
	return nil
}
