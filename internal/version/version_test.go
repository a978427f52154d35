package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/namesake/internal/symbols"
)

func TestBuildID(t *testing.T) {
	id := BuildID()
	assert.Equal(t, id, BuildID())
	assert.True(t, strings.HasPrefix(id, Version+"+"))
	assert.True(t, strings.HasSuffix(id, symbols.Default().Digest()))
}

func TestString(t *testing.T) {
	s := String()
	assert.Contains(t, s, Version)
	assert.Contains(t, s, "commit "+Commit)
	assert.Contains(t, s, "dictionaries "+symbols.Default().Digest())
}
