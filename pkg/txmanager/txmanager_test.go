package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  int
	rolledBack int
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	t.committed++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack++
	return nil
}

type fakeBeginner struct {
	begun     int
	commitErr error
	lastTx    *fakeTx
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begun++
	b.lastTx = &fakeTx{commitErr: b.commitErr}
	return b.lastTx, nil
}

func serializationFailure() *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(pqSerializationFailure)}
}

func TestDoSerializable_RetriesCommitSerializationConflict(t *testing.T) {
	// Конфликт сериализации postgres поднимает на коммите
	beginner := &fakeBeginner{commitErr: serializationFailure()}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, maxSerializableRetries, beginner.begun, "each serialization conflict must start a fresh attempt")
}

func TestDoSerializable_RetriesWrappedDriverError(t *testing.T) {
	// Ошибка драйвера приходит из fn обернутой в стиле репозитория;
	// код конфликта должен сохраниться в цепочке
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	sentinel := errors.New("repository: failed to execute query")
	attempts := 0

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("%w: GetBlockingByDate - execute query: %w", sentinel, serializationFailure())
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, maxSerializableRetries, attempts)
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	attempts := 0
	boom := errors.New("boom")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, beginner.lastTx.rolledBack)
}

func TestDo_PutsTransactionIntoContext(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.lastTx.committed)
}

func TestDo_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	boom := errors.New("boom")
	err := m.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, beginner.lastTx.committed)
	assert.Equal(t, 1, beginner.lastTx.rolledBack)
}
