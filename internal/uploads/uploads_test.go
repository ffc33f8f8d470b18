package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStoresFileUnderRandomName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save("chart.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, URLPrefix))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "chart")

	onDisk := filepath.Join(store.Dir(), strings.TrimPrefix(url, URLPrefix))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("malware.exe", strings.NewReader("nope"))
	assert.Error(t, err)
}
