package plugins

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/aicare-api/internal/core"
)

func Test_UseLimiter(t *testing.T) {
	p := newSelfHostMode()

	l := p.UseLimiter("summary:127.0.0.1", "summary", 1)
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	// same key, same limiter
	assert.Equal(t, l, p.UseLimiter("summary:127.0.0.1", "summary", 100))
	assert.True(t, p.UseLimiter("summary:10.0.0.1", "summary", 1).Allow())
}

func Test_LocalFileStorage(t *testing.T) {
	root := t.TempDir()
	s, err := SetupObjectStorage(ObjectStorageDriver{Driver: "local", LocalRoot: root, StaticDomain: "http://localhost:8000"})
	require.NoError(t, err)
	ctx := context.Background()

	meta, err := s.SaveFile(ctx, "audio/20261017", "a.wav", strings.NewReader("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, "audio/20261017/a.wav", meta.FullPath)
	assert.Equal(t, "http://localhost:8000", meta.Domain)

	raw, err := os.ReadFile(filepath.Join(root, "audio", "20261017", "a.wav"))
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(raw))

	url, err := s.GenGetObjectPreSignURL(ctx, meta.FullPath)
	require.NoError(t, err)
	assert.Equal(t, meta.FullPath, url)

	require.NoError(t, s.DeleteFile(ctx, meta.FullPath))
	_, err = os.Stat(filepath.Join(root, "audio", "20261017", "a.wav"))
	assert.True(t, os.IsNotExist(err))
}

func Test_SetupObjectStorage(t *testing.T) {
	s, err := SetupObjectStorage(ObjectStorageDriver{})
	require.NoError(t, err)
	_, err = s.SaveFile(context.Background(), "audio", "a.wav", strings.NewReader(""))
	assert.Error(t, err)

	_, err = SetupObjectStorage(ObjectStorageDriver{Driver: "s3"})
	assert.Error(t, err)

	s, err = SetupObjectStorage(ObjectStorageDriver{Driver: "s3", StaticDomain: "https://cdn.example.com", S3: &S3Config{Bucket: "aicare", Region: "us-east-1"}})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", s.GetStaticDomain())

	_, err = SetupObjectStorage(ObjectStorageDriver{Driver: "ftp"})
	assert.Error(t, err)
}

func Test_Setup(t *testing.T) {
	err := Setup(func(p core.Plugins) error { return nil }, "unknown")
	assert.Error(t, err)

	var installed core.Plugins
	require.NoError(t, Setup(func(p core.Plugins) error {
		installed = p
		return nil
	}, "selfhost"))
	assert.Equal(t, "selfhost", installed.Name())
}
