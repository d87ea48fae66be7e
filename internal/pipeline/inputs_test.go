package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thmsn/ffrenc/internal/config"
)

func TestInputSourceSinglePath(t *testing.T) {
	src := NewInputSource("/videos/a.mkv", nil)

	path, ok := src.Next()
	assert.True(t, ok)
	assert.Equal(t, "/videos/a.mkv", path)

	_, ok = src.Next()
	assert.False(t, ok, "single source yields exactly once")
	assert.NoError(t, src.Err())
}

func TestInputSourceStdinStream(t *testing.T) {
	stdin := strings.NewReader("a.mkv\n\n  b.mp4  \n\nc.avi\n")
	src := NewInputSource(config.StdinInput, stdin)

	var got []string
	for {
		path, ok := src.Next()
		if !ok {
			break
		}
		got = append(got, path)
	}
	assert.Equal(t, []string{"a.mkv", "b.mp4", "c.avi"}, got)
	assert.NoError(t, src.Err())
}

func TestInputSourceEmptyStream(t *testing.T) {
	src := NewInputSource(config.StdinInput, strings.NewReader("\n   \n\n"))
	_, ok := src.Next()
	assert.False(t, ok)
	assert.NoError(t, src.Err())
}
