package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProvider_CommitPersists(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	provider := NewSessionProvider(testDB)
	sess, err := provider.Acquire(context.Background())
	require.NoError(t, err)
	defer sess.Close()

	person := newTestPerson()
	require.NoError(t, NewPersonRepository(sess).Create(person))
	require.NoError(t, sess.Commit())

	found, err := NewPersonRepository(testDB).FindByID(person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.ID, found.ID)
}

func TestSessionProvider_CloseWithoutCommitRollsBack(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	provider := NewSessionProvider(testDB)
	sess, err := provider.Acquire(context.Background())
	require.NoError(t, err)

	person := newTestPerson()
	require.NoError(t, NewPersonRepository(sess).Create(person))
	require.NoError(t, sess.Close())

	_, err = NewPersonRepository(testDB).FindByID(person.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	provider := NewSessionProvider(testDB)
	sess, err := provider.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())

	assert.ErrorIs(t, sess.Commit(), sql.ErrTxDone)
}

func TestSession_CloseAfterCommitIsNoOp(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	provider := NewSessionProvider(testDB)
	sess, err := provider.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, sess.Commit())
	require.NoError(t, sess.Close())
}

func TestSession_ReleasedAfterStorageError(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	provider := NewSessionProvider(testDB)
	before := testDB.Stats().InUse

	sess, err := provider.Acquire(context.Background())
	require.NoError(t, err)

	_, err = sess.Exec(`INSERT INTO no_such_table (id) VALUES (1)`)
	require.Error(t, err)

	require.NoError(t, sess.Close())
	assert.Equal(t, before, testDB.Stats().InUse, "connection should return to the pool")

	// The pool must stay usable after a failed session.
	require.NoError(t, testDB.Ping())
}
