package main

import (
	"context"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/plm/internal/app"
	"github.com/llehouerou/plm/internal/config"
	"github.com/llehouerou/plm/internal/errmsg"
	"github.com/llehouerou/plm/internal/menu"
	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/ui/styles"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	seed       int64
}

// commandError tags a failure with the operation it interrupted.
type commandError struct {
	op  errmsg.Op
	err error
}

func (e *commandError) Error() string { return errmsg.Format(e.op, e.err) }
func (e *commandError) Unwrap() error { return e.err }

// session is everything a front end needs to run.
type session struct {
	cfg      *config.Config
	playlist *playlist.Playlist
	rng      *rand.Rand
}

// newRootCommand creates the plm command with its subcommands.
func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "plm",
		Short:         "A terminal playlist manager",
		Long:          `Build a playlist of songs, step through it, and view it in order, repeated or shuffled.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), s)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/plm/config.toml)")
	flags.Int64Var(&opts.seed, "seed", 0, "shuffle seed, overrides shuffle_seed (0 seeds from the clock)")

	rootCmd.AddCommand(newMenuCommand(opts))

	return rootCmd
}

// newMenuCommand creates the numbered text menu command.
func newMenuCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the numbered text menu instead of the full-screen UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			m := menu.New(s.playlist, s.rng, cmd.InOrStdin(), cmd.OutOrStdout(),
				menu.WithPathResolver(s.cfg.ResolveImportPath))
			if err := m.Run(); err != nil {
				return &commandError{op: errmsg.OpRun, err: err}
			}
			return nil
		},
	}
}

// newSession loads configuration and builds the playlist and random source.
func newSession(cmd *cobra.Command, opts *options) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, &commandError{op: errmsg.OpConfigLoad, err: err}
	}

	seed := cfg.ShuffleSeed
	if cmd.Flags().Changed("seed") {
		seed = opts.seed
	}

	styles.SetAccents(cfg.Theme.Primary, cfg.Theme.Secondary)

	return &session{
		cfg:      cfg,
		playlist: playlist.New(playlist.WithDurationPolicy(cfg.Policy())),
		rng:      playlist.NewRand(seed),
	}, nil
}

func runTUI(ctx context.Context, s *session) error {
	p := tea.NewProgram(
		app.New(s.cfg, s.playlist, s.rng),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return &commandError{op: errmsg.OpRun, err: err}
	}
	return nil
}
