package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tags and audio properties from a music file.
func Read(path string) (*FileInfo, error) {
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	t, err := ReadTag(path)
	if err != nil {
		return nil, err
	}

	info, err := ReadAudioInfo(path)
	if err != nil {
		return nil, fmt.Errorf("read duration: %w", err)
	}

	return &FileInfo{Tag: *t, AudioInfo: *info}, nil
}

// ReadTag reads tag metadata from a music file.
// It returns only tag metadata, not audio stream properties.
func ReadTag(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		case ExtFLAC:
			// dhowden/tag can fail on some FLAC files
			return readFLACWithVorbisFallback(path)
		}
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = titleFromPath(path)
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}

	t := &Tag{
		Path:   path,
		Title:  title,
		Artist: artist,
		Album:  m.Album(),
	}
	t.Sanitize()
	return t, nil
}
