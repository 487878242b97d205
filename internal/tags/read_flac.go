package tags

import (
	"fmt"
	"os"

	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// parseFLACMetadata reads the metadata blocks of a FLAC file and stops
// before the audio frames, so files cut after their headers still parse.
func parseFLACMetadata(path string) (file *goflac.File, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defer recoverFLAC(&err)
	return goflac.ParseMetadata(f)
}

// recoverFLAC turns a panic inside a FLAC parser into ErrMalformedFLAC.
func recoverFLAC(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrMalformedFLAC, r)
	}
}

// readFLACWithVorbisFallback reads the Vorbis comment block directly when
// dhowden/tag fails.
func readFLACWithVorbisFallback(path string) (*Tag, error) {
	f, err := parseFLACMetadata(path)
	if err != nil {
		return nil, err
	}

	t := &Tag{Path: path}
	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		t.Title = firstComment(cmts, flacvorbis.FIELD_TITLE)
		t.Artist = firstComment(cmts, flacvorbis.FIELD_ARTIST)
		if t.Artist == "" {
			t.Artist = firstComment(cmts, "ALBUMARTIST")
		}
		t.Album = firstComment(cmts, flacvorbis.FIELD_ALBUM)
		break
	}

	if t.Title == "" {
		t.Title = titleFromPath(path)
	}
	t.Sanitize()
	return t, nil
}

func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	values, err := cmts.Get(key)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}
