package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_DefaultTemplate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain file", "video.mkv", "video.renc.mp4"},
		{"nested path", "/media/library/video.mkv", "video.renc.mp4"},
		{"no extension", "video", "video.renc.mp4"},
		{"multiple dots", "show.s01e02.mkv", "show.s01e02.renc.mp4"},
		{"relative path", "./clips/take1.mov", "take1.renc.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in, ""))
		})
	}
}

func TestResolve_Template(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		template string
		want     string
	}{
		{"slug keeps extension", "video.mkv", "{SLUG}.out.mp4", "video.mkv.out.mp4"},
		{"nested input", "/a/b/video.mkv", "out/{SLUG}", "out/video.mkv"},
		{"every occurrence", "v.ts", "{SLUG}-{SLUG}.mp4", "v.ts-v.ts.mp4"},
		{"no placeholder unchanged", "video.mkv", "fixed.mp4", "fixed.mp4"},
		{"no extension input", "video", "{SLUG}.mp4", "video.mp4"},
		{"unknown placeholders kept", "video.mkv", "{stem}-{SLUG}", "{stem}-video.mkv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in, tt.template))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	// Re-applying a template already free of the placeholder changes nothing.
	once := Resolve("video.mkv", "{SLUG}.out.mp4")
	assert.False(t, strings.Contains(once, SlugPlaceholder))
	assert.Equal(t, once, Resolve("video.mkv", once))
}

func TestResolve_LexicalOnly(t *testing.T) {
	// Nonsense inputs are still processed as text; validity is checked by
	// the filesystem later, not here.
	assert.NotPanics(t, func() {
		Resolve("", "")
		Resolve("", "{SLUG}.mp4")
		Resolve("/some/dir/", "")
	})
}
