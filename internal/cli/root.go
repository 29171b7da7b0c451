package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/naveenspark/courtside/internal/auth"
	"github.com/naveenspark/courtside/internal/clock"
	"github.com/naveenspark/courtside/internal/config"
	"github.com/naveenspark/courtside/internal/logger"
	"github.com/naveenspark/courtside/internal/normalize"
	"github.com/naveenspark/courtside/internal/router"
	"github.com/naveenspark/courtside/internal/wiki"
	"github.com/naveenspark/courtside/pkg/client"
)

// Flags holds the global command-line flags.
type Flags struct {
	ConfigFile   string
	BackendURL   string
	NewsProxyURL string
	TokenFile    string
	Output       string
	Verbose      bool
}

// Session holds the services built once per invocation.
type Session struct {
	Config     *config.Config
	Log        *slog.Logger
	Store      *auth.FileStore
	Clock      clock.Clock
	Backend    *client.Client
	News       *client.News
	Images     *wiki.Resolver
	Guard      *auth.Guard
	Router     *router.Router
	Normalizer *normalize.Normalizer

	logFile io.Closer
}

// Close releases the log file, if one was opened.
func (s *Session) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}

var (
	flags   *Flags
	session *Session
)

// NewRootCmd creates the root command.
func NewRootCmd(version string) *cobra.Command {
	flags = &Flags{Output: "text"}
	session = nil

	rootCmd := &cobra.Command{
		Use:   "courtside [path]",
		Short: "Browse tennis players, rankings, tournaments and news",
		Long: `courtside is a terminal client for the tennis statistics backend.

Run it without arguments to open the interactive interface, optionally at a
path such as /rankings/1990 or /player/104745. Subcommands expose the same
data for scripting; use -o json for machine-readable output.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			session = s
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if session == nil {
				return nil
			}
			return session.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "/"
			if len(args) == 1 {
				start = args[0]
			}
			return runTUI(session, start)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "Config file (yaml, toml or json)")
	pf.StringVar(&flags.BackendURL, "backend", "", "Backend API URL (env: COURTSIDE_BACKEND_URL)")
	pf.StringVar(&flags.NewsProxyURL, "news-proxy", "", "News proxy URL (env: COURTSIDE_NEWS_PROXY_URL)")
	pf.StringVar(&flags.TokenFile, "token-file", "", "Token file path (env: COURTSIDE_TOKEN_PATH)")
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text, json")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log to stderr at debug level")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newDeletePlayerCmd())
	rootCmd.AddCommand(newRankingsCmd())
	rootCmd.AddCommand(newTournamentsCmd())
	rootCmd.AddCommand(newWinnersCmd())
	rootCmd.AddCommand(newTitlesCmd())
	rootCmd.AddCommand(newPhotoCmd())
	rootCmd.AddCommand(newLogoCmd())
	rootCmd.AddCommand(newNewsCmd())
	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the root command.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}

func newSession(cmd *cobra.Command, f *Flags) (*Session, error) {
	cfg, err := config.Load(f.ConfigFile)
	if err != nil {
		return nil, err
	}
	if f.BackendURL != "" {
		cfg.BackendURL = f.BackendURL
	}
	if f.NewsProxyURL != "" {
		cfg.NewsProxyURL = f.NewsProxyURL
	}
	if f.TokenFile != "" {
		cfg.TokenPath = f.TokenFile
	}
	if f.Output != "text" && f.Output != "json" {
		return nil, fmt.Errorf("unknown output format %q", f.Output)
	}

	s := &Session{Config: cfg, Clock: clock.New()}

	// The TUI owns the terminal, so logs go to a file unless -v is given.
	switch {
	case f.Verbose:
		s.Log = logger.New(cfg.Env, "debug", cmd.ErrOrStderr())
	default:
		file, err := logger.OpenFile(cfg.LogPath)
		if err != nil {
			s.Log = logger.Discard()
		} else {
			s.logFile = file
			s.Log = logger.New(cfg.Env, cfg.LogLevel, file)
		}
	}

	s.Store = auth.NewFileStore(cfg.TokenPath)
	gws := client.NewGateways(cfg, s.Store, s.Log, nil)
	s.Backend = client.New(gws.Backend, gws.BackendAuth, s.Store)
	s.News = client.NewNews(gws.News)
	s.Images = wiki.NewResolver(gws.Wikidata, gws.Commons, s.Log)
	s.Normalizer = normalize.New(s.Log)
	s.Guard = auth.NewGuard(s.Store, s.Clock, s.Log)
	s.Router = router.New(router.NewTable(router.Routes), s.Guard)

	s.Log.Debug("session ready", "backend", cfg.BackendURL, "news_proxy", cfg.NewsProxyURL, "token_path", cfg.TokenPath)
	return s, nil
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(flags.Output, cmd.OutOrStdout())
}
