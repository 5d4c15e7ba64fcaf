package covers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStorage(t)

	data := []byte("fake png bytes")
	filename, err := s.Save("poster.PNG", data)
	require.NoError(t, err)

	// Random name, preserved (lowercased) extension.
	assert.True(t, strings.HasSuffix(filename, ".png"), "filename %q", filename)
	assert.NotContains(t, filename, "poster")

	got, err := s.Get(filename)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.True(t, s.Exists(filename))
}

func TestSave_RejectsDisallowedExtension(t *testing.T) {
	s := newTestStorage(t)

	for _, name := range []string{"evil.exe", "script.js", "noextension", "archive.tar.gz"} {
		_, err := s.Save(name, []byte("data"))
		assert.Error(t, err, "extension of %q must be rejected", name)
	}
}

func TestSave_RejectsEmptyData(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Save("cover.jpg", nil)
	assert.Error(t, err)
}

func TestSave_UniqueNames(t *testing.T) {
	s := newTestStorage(t)

	a, err := s.Save("same.jpg", []byte("one"))
	require.NoError(t, err)
	b, err := s.Save("same.jpg", []byte("two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGet_RejectsPathTraversal(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get("../secrets.txt")
	assert.Error(t, err)
	assert.False(t, s.Exists("../secrets.txt"))
}

func TestDelete(t *testing.T) {
	s := newTestStorage(t)

	filename, err := s.Save("cover.webp", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(filename))
	assert.False(t, s.Exists(filename))

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete(filename))
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("a.jpg"))
	assert.True(t, AllowedExtension("a.JPEG"))
	assert.True(t, AllowedExtension("a.webp"))
	assert.False(t, AllowedExtension("a.bmp"))
	assert.False(t, AllowedExtension("a"))
}
