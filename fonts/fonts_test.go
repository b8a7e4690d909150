package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Small, Bold, Title} {
		assert.True(t, Loaded(name), name)
		assert.NotNil(t, name.Get())
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
