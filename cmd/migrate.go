package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/alejandrums/internal/config"
	"github.com/m04kA/alejandrums/internal/infra/migrations"
	"github.com/m04kA/alejandrums/pkg/dbmetrics"
	"github.com/m04kA/alejandrums/pkg/logger"
	"github.com/m04kA/alejandrums/pkg/txmanager"
)

const migrateTimeout = 2 * time.Minute

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить схему и начальные залы к PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context(), *configPath)
		},
	}
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	db, err := openPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	applied, err := migrations.Apply(ctx, wrapped, txmanager.NewTransactionManager(wrapped), log)
	if err != nil {
		return err
	}

	log.Info("Migrations done: applied=%d (db=%s)", applied, cfg.Database.DBName)
	return nil
}

// openPostgres открывает пул соединений и проверяет доступность БД
func openPostgres(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database (host=%s, port=%d, db=%s): %w",
			cfg.Host, cfg.Port, cfg.DBName, err)
	}
	return db, nil
}
