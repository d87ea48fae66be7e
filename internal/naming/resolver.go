package naming

import (
	"path/filepath"
	"strings"
)

// SlugPlaceholder is the literal token substituted in output templates.
// The slug is the reconstructed original file name: stem plus extension.
const SlugPlaceholder = "{SLUG}"

// defaultSuffix is appended to the input's stem when no template is given.
const defaultSuffix = ".renc.mp4"

// Resolve computes the output path for inputPath. With no template the
// result is the input's stem plus ".renc.mp4". With a template, every
// occurrence of {SLUG} is replaced by the input's slug and the rest of the
// template is returned unchanged; no other placeholders are recognized.
//
// An input without an extension yields an empty extension. Directories and
// empty strings are processed lexically like any other string.
func Resolve(inputPath, template string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if template == "" {
		return stem + defaultSuffix
	}
	return strings.ReplaceAll(template, SlugPlaceholder, stem+ext)
}
