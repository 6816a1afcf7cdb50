// SPDX-License-Identifier: EPL-2.0

package classify

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Clip describes an audio file whose base name follows the
// <tail>-<head>[-<variant>].<ext> naming scheme.
type Clip struct {
	// Path is the file path as given, untouched.
	Path string
	// Tail is the node label the clip departs from.
	Tail string
	// Head is the node label the clip arrives at.
	Head string
	// Variant distinguishes parallel clips between the same nodes.
	// Empty when the name has no third component.
	Variant string
	// Format is the decoder registry key for the file extension.
	Format string
}

var clipName = regexp.MustCompile(`^([^-]+)-([^-]+)(?:-(.+))?\.([a-z0-9]+)$`)

// formatKeys maps lowercased file extensions to registry format keys.
var formatKeys = map[string]string{
	"ogg":  "ogg vorbis",
	"oga":  "ogg vorbis",
	"mp3":  "mp3",
	"wav":  "wav",
	"wave": "wav",
	"aif":  "aiff",
	"aiff": "aiff",
	"aifc": "aiff",
}

// FormatKey returns the decoder registry key for a file extension.
// The extension is matched case-insensitively, with or without a
// leading dot.
func FormatKey(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	key, ok := formatKeys[ext]
	return key, ok
}

// File classifies path by its base name. Matching is case-insensitive
// and the returned labels are lowercased. ok is false when the name
// does not follow the clip scheme or the extension has no registered
// format.
func File(path string) (clip Clip, ok bool) {
	name := strings.ToLower(filepath.Base(path))

	m := clipName.FindStringSubmatch(name)
	if m == nil {
		return Clip{}, false
	}

	format, ok := formatKeys[m[4]]
	if !ok {
		return Clip{}, false
	}

	return Clip{
		Path:    path,
		Tail:    m[1],
		Head:    m[2],
		Variant: m[3],
		Format:  format,
	}, true
}
