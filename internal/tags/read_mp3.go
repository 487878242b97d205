package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2Fallback reads MP3 tags using bogem/id3v2 when
// dhowden/tag fails.
func readMP3WithID3v2Fallback(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	title := id3tag.Title()
	if title == "" {
		title = titleFromPath(path)
	}

	artist := id3tag.Artist()
	if artist == "" {
		artist = getID3TextFrame(id3tag, "TPE2") // Album artist frame
	}

	t := &Tag{
		Path:   path,
		Title:  title,
		Artist: artist,
		Album:  id3tag.Album(),
	}
	t.Sanitize()
	return t, nil
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
