package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/alejandrums/pkg/dbmetrics"
	"github.com/m04kA/alejandrums/pkg/psqlbuilder"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrReadMigrations возвращается, если не удалось прочитать встроенные файлы
	ErrReadMigrations = errors.New("migrations: failed to read embedded files")

	// ErrApply возвращается при ошибке применения миграции
	ErrApply = errors.New("migrations: failed to apply migration")
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migration один SQL файл
type Migration struct {
	Version string
	SQL     string
}

// List возвращает встроенные миграции по возрастанию версии
func List() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		body, err := fs.ReadFile(files, "sql/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadMigrations, e.Name(), err)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(e.Name(), ".sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Apply применяет ещё не применённые миграции, каждую в своей транзакции
// Возвращает количество применённых миграций
func Apply(ctx context.Context, db dbmetrics.DBExecutor, txManager TransactionManager, log Logger) (int, error) {
	migrations, err := List()
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %v", ErrApply, err)
	}

	applied := 0
	for _, m := range migrations {
		err := txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, db)

			done, err := isApplied(txCtx, executor, m.Version)
			if err != nil || done {
				return err
			}

			if _, err := executor.ExecContext(txCtx, m.SQL); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert("schema_migrations").
				Columns("version").
				Values(m.Version).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
				return err
			}

			applied++
			log.Info("Migrations: applied %s", m.Version)
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrApply, m.Version, err)
		}
	}

	return applied, nil
}

func isApplied(ctx context.Context, executor dbmetrics.DBExecutor, version string) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
