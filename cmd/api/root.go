package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/5w1tchy/bookshelf/internal/config"
	"github.com/5w1tchy/bookshelf/internal/logging"
	"github.com/5w1tchy/bookshelf/internal/repository/sqlconnect"
	"github.com/5w1tchy/bookshelf/internal/store/dbx"
	"github.com/5w1tchy/bookshelf/internal/validate"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log zerolog.Logger
}

func rootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Server-rendered book catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().Int("port", 3000, "HTTP listen port")
	root.PersistentFlags().String("db", "./books.db", "sqlite database path (ignored when DATABASE_URL is set)")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the environment")

	serve := serveCommand(a)
	root.AddCommand(serve, seedCommand(a), hashPasswordCommand(), backupCommand(a))

	// bare "bookshelf" starts the server
	root.RunE = serve.RunE
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	config.LoadDotEnv(envFile)

	a.v = config.New()
	if err := a.v.BindPFlag("port", cmd.Flags().Lookup("port")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if err := a.v.BindPFlag("db_path", cmd.Flags().Lookup("db")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	a.cfg = config.Load(a.v)
	a.log = logging.New(os.Stderr, a.cfg.LogLevel, a.cfg.LogFormat)
	return validate.Config(a.cfg)
}

func (a *app) connect(ctx context.Context) (*sql.DB, dbx.Dialect, error) {
	db, dialect, err := sqlconnect.ConnectDB(ctx, sqlconnect.Options{
		DatabaseURL: a.cfg.DatabaseURL,
		Path:        a.cfg.DBPath,
	})
	if err != nil {
		return nil, "", fmt.Errorf("connect store: %w", err)
	}
	a.log.Info().Str("component", "store").Str("dialect", string(dialect)).Msg("store connected")
	return db, dialect, nil
}
