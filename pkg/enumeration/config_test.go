package enumeration

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	defaults := Config{Workers: runtime.NumCPU(), ChunkSize: defaultChunkSize, Color: "auto"}

	for _, test := range []struct {
		name     string
		contents string
		missing  bool
		wantErr  bool
		want     Config
	}{
		{name: "MissingFile", missing: true, want: defaults},
		{name: "EmptyObject", contents: `{}`, want: defaults},
		{
			name:     "Override",
			contents: `{"workers": 2, "chunkSize": 1024, "color": "never"}`,
			want:     Config{Workers: 2, ChunkSize: 1024, Color: "never"},
		},
		{
			name:     "PartialOverride",
			contents: `{"workers": 3}`,
			want:     Config{Workers: 3, ChunkSize: defaultChunkSize, Color: "auto"},
		},
		{
			name:     "WeaklyTyped",
			contents: `{"workers": "4"}`,
			want:     Config{Workers: 4, ChunkSize: defaultChunkSize, Color: "auto"},
		},
		{name: "UnknownKey", contents: `{"solver": "kissat"}`, wantErr: true},
		{name: "ZeroWorkers", contents: `{"workers": 0}`, wantErr: true},
		{name: "NegativeChunk", contents: `{"chunkSize": -1}`, wantErr: true},
		{name: "InvalidColor", contents: `{"color": "sometimes"}`, wantErr: true},
		{name: "InvalidJson", contents: `{"workers": `, wantErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			//** Arrange
			path := filepath.Join(t.TempDir(), "absent.json")
			if !test.missing {
				path = writeConfig(t, test.contents)
			}

			//** Act
			config, err := LoadConfig(path)

			//** Assert
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, config)
		})
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
