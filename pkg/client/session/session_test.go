package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	sess := &Session{
		Token: "token-123",
		Email: "doc@example.com",
		Role:  RoleProvider,
		SignupDraft: &SignupDraft{
			Email:     "doc@example.com",
			Step:      2,
			ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
		},
	}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-123", loaded.Token)
	assert.Equal(t, RoleProvider, loaded.Role)
	require.NotNil(t, loaded.SignupDraft)
	assert.Equal(t, 2, loaded.SignupDraft.Step)
	assert.True(t, loaded.IsAuthenticated())
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&Session{Token: "secret"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.SignupDraft)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	sess, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestFileStoreClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&Session{Token: "t"}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	original := &Session{Token: "t", Email: "a@example.com"}
	require.NoError(t, store.Save(original))

	original.Token = "mutated"

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t", loaded.Token)
}

func TestSignupDraftExpired(t *testing.T) {
	now := time.Now()

	fresh := &SignupDraft{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, fresh.Expired(now))

	stale := &SignupDraft{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, stale.Expired(now))

	// A zero expiry never expires; old files without the field keep
	// working.
	assert.False(t, (&SignupDraft{}).Expired(now))
}
