package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func passthrough(t *testing.T) *mock.MockProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	}).AnyTimes()
	p.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	}).AnyTimes()
	return p
}

func newTestSession(t *testing.T) (*Session, *store.FileStore) {
	t.Helper()
	files := store.New(filepath.Join(t.TempDir(), "secrets.enc"), passthrough(t))
	return New(files, logger.Nop()), files
}

func TestSession_UnlockMissingFileIsEmptyStore(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.Unlock())

	st := s.Status()
	assert.Equal(t, models.SessionUnlocked, st.State)
	assert.Equal(t, 0, st.SecretCount)
	assert.False(t, st.StartedAt.IsZero())
}

func TestSession_UnlockIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	}).AnyTimes()
	// Exactly one decrypt regardless of how many times Unlock is called.
	p.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	}).Times(1)

	path := filepath.Join(t.TempDir(), "secrets.enc")
	files := store.New(path, p)
	require.NoError(t, files.Add("TOKEN", "abc"))

	s := New(files, logger.Nop())
	require.NoError(t, s.Unlock())
	first := s.Status()

	require.NoError(t, s.Unlock())
	second := s.Status()

	assert.Equal(t, first.StartedAt, second.StartedAt)
	assert.Equal(t, 1, second.SecretCount)
}

func TestSession_OperationsRequireUnlock(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Get("TOKEN")
	require.ErrorIs(t, err, ErrNotUnlocked)
	_, err = s.Keys()
	require.ErrorIs(t, err, ErrNotUnlocked)
	_, err = s.Snapshot()
	require.ErrorIs(t, err, ErrNotUnlocked)
	require.ErrorIs(t, s.Add("TOKEN", "v"), ErrNotUnlocked)
	require.ErrorIs(t, s.Remove("TOKEN"), ErrNotUnlocked)
}

func TestSession_AddIsWriteThrough(t *testing.T) {
	s, files := newTestSession(t)
	require.NoError(t, s.Unlock())

	require.NoError(t, s.Add("TOKEN", "abc"))

	// A separate reader of the same file must already see the change.
	v, err := files.Get("TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestSession_RemoveMissingKey(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Unlock())

	err := s.Remove("ABSENT")
	require.ErrorIs(t, err, store.ErrSecretNotFound)
}

func TestSession_FailedSaveLeavesCacheAndDiskUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	}).AnyTimes()

	gomock.InOrder(
		// seed file, then unlock-time load has no encrypt; first session
		// add succeeds, second fails.
		p.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) { return b, nil }),
		p.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) { return b, nil }),
		p.EXPECT().Encrypt(gomock.Any()).Return(nil, errors.New("provider down")),
	)

	path := filepath.Join(t.TempDir(), "secrets.enc")
	files := store.New(path, p)
	require.NoError(t, files.Add("KEEP", "1"))

	s := New(files, logger.Nop())
	require.NoError(t, s.Unlock())
	require.NoError(t, s.Add("SECOND", "2"))

	require.Error(t, s.Add("THIRD", "3"))

	// Cache still reflects only the successful writes.
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP", "SECOND"}, keys)

	// And so does the file.
	got, err := files.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP", "SECOND"}, got)
}

func TestSession_StopDropsState(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Unlock())
	require.NoError(t, s.Add("TOKEN", "abc"))

	s.Stop()

	st := s.Status()
	assert.Equal(t, models.SessionStopped, st.State)
	assert.Equal(t, 0, st.SecretCount)
	assert.True(t, st.StartedAt.IsZero())

	_, err := s.Get("TOKEN")
	require.ErrorIs(t, err, ErrNotUnlocked)
}
