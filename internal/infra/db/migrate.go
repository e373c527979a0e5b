package db

import (
	"errors"
	"log/slog"
	"strings"

	"membership-backoffice/internal/pkg/config"
	"membership-backoffice/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies pending SQL migrations from dir.
func Migrate(cfg config.DBConfig, dir string) error {
	dsn := strings.Replace(cfg.BuildDSN(), "postgres://", "pgx5://", 1)

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return errs.Wrap(err, "failed to initialize migrations")
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to apply migrations")
	}

	slog.Info("database migrations applied", "dir", dir)
	return nil
}
