package versionrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Latest version is returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC")).
			WillReturnRows(pgxmock.NewRows([]string{"id", "version", "executed_on"}).AddRow(2, "2.1", now))

		v, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "2.1", v.Version)
	})

	t.Run("Fresh database has no version", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC")).
			WillReturnError(pgx.ErrNoRows)

		v, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestRepository_Set(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO versions (version) VALUES ($1)")).
		WithArgs("2.1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Set(context.Background(), "2.1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
