package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rfidpos/internal/config"
	"rfidpos/internal/pg"
	"rfidpos/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	services := New(&config.Config{LegacyImport: true}, repo.New(mockDB), pg.NewMockTXManager(ctrl))

	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.LedgerService)
}
