package repo

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := New(mockDB)

	assert.NotNil(t, repos.AccountRepo)
	assert.NotNil(t, repos.TransactionRepo)
	assert.NotNil(t, repos.VersionRepo)
}
