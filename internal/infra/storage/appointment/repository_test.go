package appointment

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

type executorMock struct {
	execContext func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (m *executorMock) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return m.execContext(ctx, query, args...)
}

func (m *executorMock) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("unexpected QueryContext call")
}

func (m *executorMock) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestUpdateStatus_KeepsDriverErrorInChain(t *testing.T) {
	repo := NewRepository(&executorMock{
		execContext: func(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
			return nil, &pq.Error{Code: "40001"}
		},
	})

	err := repo.UpdateStatus(context.Background(), "id", domain.StatusConfirmed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	// код ошибки драйвера должен быть извлекаем для ретрая транзакции
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestUpdateStatus_ZeroRowsMeansNotFound(t *testing.T) {
	repo := NewRepository(&executorMock{
		execContext: func(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
			return driver.RowsAffected(0), nil
		},
	})

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestIsUniqueSlotViolation(t *testing.T) {
	slotErr := &pq.Error{Code: "23505", Constraint: uniqueActiveSlotIndex}

	assert.True(t, isUniqueSlotViolation(slotErr))
	assert.True(t, isUniqueSlotViolation(fmt.Errorf("insert: %w", slotErr)))

	assert.False(t, isUniqueSlotViolation(&pq.Error{Code: "23505", Constraint: "appointments_pkey"}))
	assert.False(t, isUniqueSlotViolation(&pq.Error{Code: "40001"}))
	assert.False(t, isUniqueSlotViolation(errors.New("connection refused")))
}
