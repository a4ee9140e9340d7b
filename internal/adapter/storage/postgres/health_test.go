package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	h := NewHealthCheck(mock)
	assert.Equal(t, "ledger_db", h.Name())

	mock.ExpectExec("SELECT last_record_id FROM merchants").
		WillReturnResult(pgxmock.NewResult("SELECT", 0))
	assert.NoError(t, h.Ping(context.Background()))

	mock.ExpectExec("SELECT last_record_id FROM merchants").
		WillReturnError(errors.New(`relation "merchants" does not exist`))
	err = h.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger schema")

	assert.NoError(t, mock.ExpectationsWereMet())
}
