package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passthroughProvider wires the mock to encrypt and decrypt as identity, so
// store tests exercise file handling without real cryptography.
func passthroughProvider(t *testing.T) *mock.MockProvider {
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

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	f := New(path, passthroughProvider(t))

	st := models.NewStore()
	st.Set("B_KEY", "2")
	st.Set("A_KEY", "1")
	require.NoError(t, f.Save(st))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"B_KEY", "A_KEY"}, got.Keys())

	v, ok := got.Get("A_KEY")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "secrets.enc"), passthroughProvider(t))

	_, err := f.Load()
	require.ErrorIs(t, err, ErrStoreNotFound)

	st, err := f.LoadOrEmpty()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Len())
}

func TestFileStore_SaveRestrictsPermissionsAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.enc")
	f := New(path, passthroughProvider(t))

	st := models.NewStore()
	st.Set("TOKEN", "abc")
	require.NoError(t, f.Save(st))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// The temp file must be gone after the rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "secrets.enc", entries[0].Name())
}

func TestFileStore_SaveCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "secrets.enc")
	f := New(path, passthroughProvider(t))

	require.NoError(t, f.Save(models.NewStore()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_FailedEncryptLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	ctrl := gomock.NewController(t)
	p := mock.NewMockProvider(ctrl)

	first := p.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	})
	p.EXPECT().Encrypt(gomock.Any()).Return(nil, errors.New("key gone")).After(first)
	p.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(b []byte) ([]byte, error) {
		return b, nil
	}).AnyTimes()

	f := New(path, p)

	st := models.NewStore()
	st.Set("TOKEN", "v1")
	require.NoError(t, f.Save(st))

	st.Set("TOKEN", "v2")
	require.Error(t, f.Save(st))

	got, err := f.Load()
	require.NoError(t, err)
	v, _ := got.Get("TOKEN")
	assert.Equal(t, "v1", v)
}

func TestFileStore_AddOverwritesSilently(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "secrets.enc"), passthroughProvider(t))

	require.NoError(t, f.Add("TOKEN", "old"))
	require.NoError(t, f.Add("TOKEN", "new"))

	v, err := f.Get("TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	keys, err := f.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"TOKEN"}, keys)
}

func TestFileStore_RemoveMissingKey(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "secrets.enc"), passthroughProvider(t))

	require.NoError(t, f.Add("KEEP", "1"))
	err := f.Remove("ABSENT")
	require.ErrorIs(t, err, ErrSecretNotFound)

	// The miss must not have rewritten the file.
	keys, err := f.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP"}, keys)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "secrets.enc"), passthroughProvider(t))

	_, err := f.Get("ABSENT")
	require.ErrorIs(t, err, ErrSecretNotFound)
}
