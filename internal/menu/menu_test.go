//nolint:goconst // test cases intentionally repeat strings for readability
package menu

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/plm/internal/playlist"
)

// run feeds lines to a menu over pl and returns everything printed with the
// menu banners removed.
func run(t *testing.T, pl *playlist.Playlist, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(pl, playlist.NewRand(1), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, m.Run())
	return strings.ReplaceAll(out.String(), header, "")
}

func seeded(t *testing.T, titles ...string) *playlist.Playlist {
	t.Helper()
	pl := playlist.New()
	for _, title := range titles {
		require.NoError(t, pl.Add(title, "Artist "+title, 100))
	}
	return pl
}

func TestRun_Exit(t *testing.T) {
	got := run(t, playlist.New(), "9")
	assert.Equal(t, "Exiting...\n", got)
}

func TestRun_EOFExits(t *testing.T) {
	var out bytes.Buffer
	m := New(playlist.New(), playlist.NewRand(1), strings.NewReader(""), &out)

	require.NoError(t, m.Run())
	assert.Equal(t, header+"\n", out.String())
}

func TestRun_EOFDuringAdd(t *testing.T) {
	pl := playlist.New()
	var out bytes.Buffer
	m := New(pl, playlist.NewRand(1), strings.NewReader("1\nSong A\n"), &out)

	require.NoError(t, m.Run())
	assert.True(t, pl.IsEmpty())
}

func TestRun_InvalidChoice(t *testing.T) {
	for _, choice := range []string{"0", "11", "abc", ""} {
		t.Run(choice, func(t *testing.T) {
			got := run(t, playlist.New(), choice, "9")
			assert.Equal(t, "Invalid choice. Please enter a valid option.\nExiting...\n", got)
		})
	}
}

func TestRun_AddSong(t *testing.T) {
	pl := playlist.New()

	got := run(t, pl, "1", "Song A", "Artist A", "180", "9")

	assert.Equal(t,
		"Enter song title: Enter artist name: Enter duration (in seconds): Song added to the playlist.\nExiting...\n",
		got)
	assert.Equal(t, []playlist.SongView{{Title: "Song A", Artist: "Artist A", Duration: 180}}, pl.List())
}

func TestRun_AddSong_KeepsSpaces(t *testing.T) {
	pl := playlist.New()

	run(t, pl, "1", "  Song A ", "", "3:00", "9")

	require.Equal(t, 1, pl.Len())
	assert.Equal(t, "  Song A ", pl.List()[0].Title)
	assert.Equal(t, 180, pl.List()[0].Duration)
}

func TestRun_AddSong_Errors(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		duration string
		want     string
	}{
		{"invalid duration", "Song A", "three", "Failed to parse duration: invalid duration: \"three\""},
		{"negative duration", "Song A", "-1", "Failed to add song: song duration is negative: -1"},
		{"empty title", "", "10", "Failed to add song: song title is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := playlist.New()

			got := run(t, pl, "1", tt.title, "Artist", tt.duration, "9")

			assert.Contains(t, got, tt.want+"\n")
			assert.True(t, pl.IsEmpty())
		})
	}
}

func TestRun_RemoveSong(t *testing.T) {
	pl := seeded(t, "Song A", "Song B")

	got := run(t, pl, "2", "Song A", "2", "Song Z", "9")

	assert.Contains(t, got, "Song 'Song A' removed from the playlist.\n")
	assert.Contains(t, got, "Song 'Song Z' not found in the playlist.\n")
	assert.Equal(t, 1, pl.Len())
}

func TestRun_DisplayAndRepeat(t *testing.T) {
	pl := seeded(t, "Song A", "Song B")

	got := run(t, pl, "5", "4", "9")

	want := "Playlist:\n" +
		"Title: Song A, Artist: Artist Song A, Duration: 100 seconds\n" +
		"Title: Song B, Artist: Artist Song B, Duration: 100 seconds\n" +
		"Repeating playlist:\n" +
		"Title: Song A, Artist: Artist Song A, Duration: 100 seconds\n" +
		"Title: Song B, Artist: Artist Song B, Duration: 100 seconds\n" +
		"Exiting...\n"
	assert.Equal(t, want, got)
}

func TestRun_EmptyPlaylist(t *testing.T) {
	got := run(t, playlist.New(), "5", "4", "3", "6", "7", "8", "9")

	want := "Playlist:\n" +
		"Playlist is empty.\n" +
		"Playlist is empty.\n" +
		"No song is currently selected.\n" +
		"End of playlist reached.\n" +
		"Beginning of playlist reached.\n" +
		"Exiting...\n"
	assert.Equal(t, want, got)
}

func TestRun_Navigation(t *testing.T) {
	pl := seeded(t, "Song A", "Song B", "Song C")

	got := run(t, pl, "6", "7", "7", "6", "7", "8", "8", "8", "6", "9")

	want := "Now playing: Song A - Artist Song A (100 seconds)\n" +
		"Now playing: Song C - Artist Song C (100 seconds)\n" +
		"End of playlist reached.\n" +
		"Beginning of playlist reached.\n" +
		"Now playing: Song A - Artist Song A (100 seconds)\n" +
		"Exiting...\n"
	assert.Equal(t, want, got)
}

func TestRun_Shuffle(t *testing.T) {
	pl := seeded(t, "Song A", "Song B", "Song C")
	before := pl.List()

	got := run(t, pl, "3", "9")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Shuffled playlist:", lines[0])
	assert.ElementsMatch(t, []string{
		"Title: Song A, Artist: Artist Song A, Duration: 100 seconds",
		"Title: Song B, Artist: Artist Song B, Duration: 100 seconds",
		"Title: Song C, Artist: Artist Song C, Duration: 100 seconds",
	}, lines[1:4])
	assert.Equal(t, before, pl.List())
}

func TestRun_ImportMissingFile(t *testing.T) {
	dir := t.TempDir()
	pl := playlist.New()
	var out bytes.Buffer
	m := New(pl, playlist.NewRand(1), strings.NewReader("10\nmissing.mp3\n9\n"), &out,
		WithPathResolver(func(p string) string { return filepath.Join(dir, p) }))

	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Enter file path: Failed to import file '"+filepath.Join(dir, "missing.mp3")+"'")
	assert.True(t, pl.IsEmpty())
}

func TestRun_ImportUnsupported(t *testing.T) {
	got := run(t, playlist.New(), "10", "notes.txt", "9")

	assert.Contains(t, got, "Failed to import file 'notes.txt': unsupported format: .txt\n")
}

// headerOnlyFLAC is a FLAC file whose last metadata block is a STREAMINFO
// of 30 seconds at 44.1kHz, with no audio frames after it.
func headerOnlyFLAC() []byte {
	samples := 44100 * 30
	streamInfo := make([]byte, 34)
	streamInfo[10], streamInfo[11], streamInfo[12] = 0x0A, 0xC4, 0x42
	streamInfo[13] = 0xF0
	streamInfo[14] = byte(samples >> 24)
	streamInfo[15] = byte(samples >> 16)
	streamInfo[16] = byte(samples >> 8)
	streamInfo[17] = byte(samples)

	data := []byte("fLaC")
	data = append(data, 0x80, 0x00, 0x00, byte(len(streamInfo)))
	return append(data, streamInfo...)
}

func TestRun_ImportHeaderOnlyFLAC(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cut.flac"), headerOnlyFLAC(), 0o600))
	pl := playlist.New()

	var got string
	require.NotPanics(t, func() {
		got = run(t, pl, "10", filepath.Join(dir, "cut.flac"), "9")
	})

	assert.Contains(t, got, "Imported 'cut'")
	require.Equal(t, 1, pl.Len())
	assert.Equal(t, 30, pl.List()[0].Duration)
}

func TestRun_ImportTruncatedFLAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.flac")
	require.NoError(t, os.WriteFile(path, headerOnlyFLAC()[:20], 0o600))
	pl := playlist.New()

	var got string
	require.NotPanics(t, func() {
		got = run(t, pl, "10", path, "9")
	})

	assert.Contains(t, got, "Failed to import file '"+path+"'")
	assert.True(t, pl.IsEmpty())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRun_WriteError(t *testing.T) {
	m := New(playlist.New(), playlist.NewRand(1), strings.NewReader("5\n5\n"), failingWriter{})

	assert.ErrorIs(t, m.Run(), errWrite)
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) Read([]byte) (int, error) { return 0, errRead }

func TestRun_ReadError(t *testing.T) {
	m := New(playlist.New(), playlist.NewRand(1), failingReader{}, &bytes.Buffer{})

	assert.ErrorIs(t, m.Run(), errRead)
}
