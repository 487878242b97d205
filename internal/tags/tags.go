// Package tags reads song metadata (title, artist, duration) from music
// files so they can be imported into a playlist.
package tags

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/llehouerou/plm/internal/ui/render"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

var (
	// ErrUnsupportedFormat is returned for files that are neither MP3 nor FLAC.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrMalformedFLAC is returned when a FLAC parser gives up on a damaged file.
	ErrMalformedFLAC = errors.New("malformed flac")
)

// Tag contains the text metadata read from a file.
type Tag struct {
	Path   string
	Title  string
	Artist string
	Album  string
}

// Sanitize strips control characters and invalid UTF-8 from text fields.
func (t *Tag) Sanitize() {
	t.Title = render.Sanitize(t.Title)
	t.Artist = render.Sanitize(t.Artist)
	t.Album = render.Sanitize(t.Album)
}

// AudioInfo contains audio stream properties.
type AudioInfo struct {
	Duration   time.Duration
	Format     string // MP3, FLAC
	SampleRate int
}

// FileInfo combines Tag and AudioInfo for a complete file description.
type FileInfo struct {
	Tag
	AudioInfo
}

// Seconds returns the duration rounded to whole seconds.
func (f *FileInfo) Seconds() int {
	return int(f.Duration.Round(time.Second) / time.Second)
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ExtMP3 || ext == ExtFLAC
}

// titleFromPath returns the file base name without its extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
