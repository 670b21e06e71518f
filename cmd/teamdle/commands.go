package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	"github.com/EmersonKing1/Teamdle-Project/internal/cli"
	"github.com/EmersonKing1/Teamdle-Project/internal/config"
	"github.com/EmersonKing1/Teamdle-Project/internal/daily"
	"github.com/EmersonKing1/Teamdle-Project/internal/logging"
	"github.com/EmersonKing1/Teamdle-Project/internal/server"
	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

const envPrefix = "TEAMDLE"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (configured through environment variables)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Service: cfg.Metrics.ServiceName,
				Version: appVersion,
			})

			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()

			srv, err := server.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			srv.Run(ctx, stop)
			return nil
		},
	}
}

// gameFlags are shared by play and target.
type gameFlags struct {
	date        string
	limit       int
	catalogPath string
	timezone    string
	noColor     bool
}

func (f *gameFlags) register(fs *pflag.FlagSet, defaults config.Config) {
	fs.StringVarP(&f.date, "date", "d", "", "puzzle date as YYYY-MM-DD; defaults to today (env: TEAMDLE_DATE)")
	fs.IntVarP(&f.limit, "limit", "n", defaults.GuessLimit, "number of guesses allowed (env: TEAMDLE_LIMIT)")
	fs.StringVar(&f.catalogPath, "catalog", defaults.CatalogPath, "path to a team catalog JSON file; empty uses the built-in catalog (env: TEAMDLE_CATALOG)")
	fs.StringVar(&f.timezone, "tz", defaults.DailyTimezone, "timezone that decides today's date (env: TEAMDLE_TZ)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable ANSI colors (env: TEAMDLE_NO_COLOR)")
}

func (f *gameFlags) puzzleDate(now time.Time) (timeutil.Date, error) {
	if f.date != "" {
		return timeutil.ParseCalendarDate(f.date)
	}
	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return timeutil.Date{}, fmt.Errorf("invalid --tz %q: %w", f.timezone, err)
	}
	return timeutil.Today(now, loc), nil
}

func (f *gameFlags) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return catalog.SourceFor(f.catalogPath).Load(ctx)
}

// bindEnv lets TEAMDLE_* variables fill any flag the user did not set.
func bindEnv(fs *pflag.FlagSet) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(fl.Name, fl)
		_ = v.BindEnv(fl.Name)
		if !fl.Changed && v.IsSet(fl.Name) {
			_ = fs.Set(fl.Name, fmt.Sprintf("%v", v.Get(fl.Name)))
		}
	})
}

func newPlayCmd() *cobra.Command {
	flags := &gameFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round in the terminal",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindEnv(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := flags.puzzleDate(time.Now())
			if err != nil {
				return err
			}
			c, err := flags.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			_, err = cli.Play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cli.Options{
				Catalog: c,
				Date:    date,
				Limit:   flags.limit,
				Color:   !flags.noColor,
			})
			return err
		},
	}
	flags.register(cmd.Flags(), config.Load())
	return cmd
}

func newTargetCmd() *cobra.Command {
	flags := &gameFlags{}
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Print the team selected for a date",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindEnv(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := flags.puzzleDate(time.Now())
			if err != nil {
				return err
			}
			c, err := flags.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			team, err := daily.SelectTarget(c.Teams(), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", date, cli.Describe(team))
			return nil
		},
	}
	flags.register(cmd.Flags(), config.Load())
	return cmd
}
