package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "templates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "templates", "index.gohtml"), []byte("<p>"), 0o644))

	first, err := fingerprint(root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignored"), 0o644))
	unchanged, err := fingerprint(root)
	require.NoError(t, err)
	assert.Equal(t, first, unchanged)

	require.NoError(t, os.WriteFile(filepath.Join(root, "app.js"), []byte("console.log(1)"), 0o644))
	changed, err := fingerprint(root)
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
}

func TestFingerprintMissingRoot(t *testing.T) {
	_, err := fingerprint(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
