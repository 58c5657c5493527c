package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetch_DownloadsToDestination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1F600;GRINNING FACE;So;0;ON;;;;;N;;;;;\n"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "db", "UnicodeData.txt")
	c := NewClient(Config{TimeoutSeconds: 5}, zap.NewNop())

	path, err := c.Fetch(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, path)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GRINNING FACE")
}

func TestFetch_ExistingFileIsCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("cached fetch must not hit the network")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "emoji-test.txt")
	require.NoError(t, os.WriteFile(dest, []byte("cached"), 0o644))

	c := NewClient(Config{TimeoutSeconds: 5}, zap.NewNop())
	path, err := c.Fetch(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, path)

	data, _ := os.ReadFile(dest)
	assert.Equal(t, "cached", string(data))
}

func TestFetch_NonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "emoji-test.txt")
	c := NewClient(Config{TimeoutSeconds: 5}, zap.NewNop())

	_, err := c.Fetch(context.Background(), srv.URL, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")

	// A failed download must not leave a file behind to poison the cache.
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfig_CachePaths(t *testing.T) {
	cfg := Config{CacheDir: "db"}
	assert.Equal(t, filepath.Join("db", "emoji-test.txt"), cfg.EmojiTestPath())
	assert.Equal(t, filepath.Join("db", "UnicodeData.txt"), cfg.UnicodeDataPath())
}
