package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Options
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			data: "",
			want: DefaultOptions(),
		},
		{
			name: "overrides",
			data: "scale: 2\ndebug: true\nmute: true\nvolume: 0.25\nseed: 42\n",
			want: Options{Scale: 2, Debug: true, Mute: true, Volume: 0.25, Seed: 42},
		},
		{
			name: "volume clamped",
			data: "volume: 3\n",
			want: Options{Scale: 1, Volume: 1},
		},
		{
			name:    "bad scale",
			data:    "scale: 0\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			data:    "scale: [1, 2\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, DefaultOptions(), got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultOptionsFile)
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o600))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.True(t, opts.Debug)
	assert.Equal(t, 1.0, opts.Scale)
}

func TestTicksToMs(t *testing.T) {
	assert.Equal(t, int64(0), TicksToMs(0))
	assert.Equal(t, int64(100), TicksToMs(6))
	assert.Equal(t, int64(1000), TicksToMs(60))
}

func TestAnimationFrames(t *testing.T) {
	player := CharacterAnimations["player"]
	assert.Equal(t, 4, player[AttackAnim(0)].Frames())
	assert.Equal(t, 3, player[AttackAnim(1)].Frames())
	assert.Equal(t, 5, player[AttackAnim(2)].Frames())
	assert.Equal(t, 0, AnimationDef{}.Frames())
}
