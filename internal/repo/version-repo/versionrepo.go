package versionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"rfidpos/internal/domain"
	"rfidpos/internal/pg"

	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get returns the most recent version entry, or nil for a fresh database.
func (r *Repository) Get(ctx context.Context) (*domain.Version, error) {
	query := `
        SELECT id, version, executed_on
        FROM versions
        ORDER BY id DESC
        LIMIT 1
    `
	var v domain.Version
	err := r.db.QueryRow(ctx, query).Scan(&v.ID, &v.Version, &v.ExecutedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get version", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Set(ctx context.Context, version string) error {
	query := `INSERT INTO versions (version) VALUES ($1)`
	if _, err := r.db.Exec(ctx, query, version); err != nil {
		zap.L().Error("failed to set version", zap.Error(err))
		return err
	}
	return nil
}
