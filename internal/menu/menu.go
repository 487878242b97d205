// Package menu runs the numbered text menu over an input and output stream.
package menu

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/llehouerou/plm/internal/errmsg"
	"github.com/llehouerou/plm/internal/playlist"
	"github.com/llehouerou/plm/internal/tags"
	"github.com/llehouerou/plm/internal/ui/render"
	"github.com/llehouerou/plm/internal/ui/status"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceRemove
	choiceShuffle
	choiceRepeat
	choiceDisplay
	choicePlay
	choiceNext
	choicePrev
	choiceExit
	choiceImport
)

const header = `========== Playlist Management System ==========
1. Add a song
2. Remove a song
3. Shuffle the playlist
4. Repeat the playlist
5. Display playlist
6. Play current song
7. Move to next song
8. Move to previous song
9. Exit
10. Import a song from file
Enter your choice: `

// errEOF ends the loop when input runs out mid-command.
var errEOF = errors.New("end of input")

// Option configures a Menu.
type Option func(*Menu)

// WithPathResolver sets how typed import paths are turned into file paths.
func WithPathResolver(resolve func(string) string) Option {
	return func(m *Menu) {
		m.resolve = resolve
	}
}

// Menu is the text front end of a playlist.
type Menu struct {
	pl      *playlist.Playlist
	rng     playlist.Rand
	in      *bufio.Scanner
	out     io.Writer
	resolve func(string) string
	err     error // first write error
}

// New creates a menu reading commands from in and writing to out.
func New(pl *playlist.Playlist, rng playlist.Rand, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		pl:      pl,
		rng:     rng,
		in:      bufio.NewScanner(in),
		out:     out,
		resolve: func(p string) string { return p },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits or input ends. It returns read or
// write errors; running out of input is a normal exit.
func (m *Menu) Run() error {
	for {
		m.print(header)
		line, err := m.readLine()
		if err != nil {
			return m.finish(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = 0
		}
		if choice == choiceExit {
			m.println("Exiting...")
			return m.err
		}
		if err := m.dispatch(choice); err != nil {
			return m.finish(err)
		}
		if m.err != nil {
			return m.err
		}
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errEOF) {
		m.println("")
		return m.err
	}
	return err
}

func (m *Menu) dispatch(choice int) error {
	switch choice {
	case choiceAdd:
		return m.add()
	case choiceRemove:
		return m.remove()
	case choiceShuffle:
		m.shuffle()
	case choiceRepeat:
		m.repeat()
	case choiceDisplay:
		m.display()
	case choicePlay:
		m.play()
	case choiceNext:
		if !m.pl.Next() {
			m.println(status.EndReached)
		}
	case choicePrev:
		if !m.pl.Prev() {
			m.println(status.StartReached)
		}
	case choiceImport:
		return m.importFile()
	default:
		m.println("Invalid choice. Please enter a valid option.")
	}
	return nil
}

func (m *Menu) add() error {
	title, err := m.ask("Enter song title: ")
	if err != nil {
		return err
	}
	artist, err := m.ask("Enter artist name: ")
	if err != nil {
		return err
	}
	raw, err := m.ask("Enter duration (in seconds): ")
	if err != nil {
		return err
	}

	duration, err := render.ParseDuration(raw)
	if err != nil {
		m.println(errmsg.Format(errmsg.OpParseDuration, err))
		return nil
	}
	if err := m.pl.Add(title, artist, duration); err != nil {
		m.println(errmsg.Format(errmsg.OpSongAdd, err))
		return nil
	}
	m.println(status.Added)
	return nil
}

func (m *Menu) remove() error {
	title, err := m.ask("Enter song title to remove: ")
	if err != nil {
		return err
	}
	if m.pl.Remove(title) {
		m.println(status.Removed(title))
	} else {
		m.println(status.NotFound(title))
	}
	return nil
}

func (m *Menu) shuffle() {
	songs, err := m.pl.Shuffled(m.rng)
	if err != nil {
		m.println(status.Empty)
		return
	}
	m.println("Shuffled playlist:")
	m.list(songs)
}

func (m *Menu) repeat() {
	songs, err := m.pl.Repeat()
	if err != nil {
		m.println(status.Empty)
		return
	}
	m.println("Repeating playlist:")
	m.list(songs)
}

func (m *Menu) display() {
	m.println("Playlist:")
	for s := range m.pl.All() {
		m.println(status.SongLine(s))
	}
}

func (m *Menu) play() {
	cur, ok := m.pl.Current()
	if !ok {
		m.println(status.NoCurrent)
		return
	}
	m.println(status.NowPlaying(cur))
}

func (m *Menu) importFile() error {
	raw, err := m.ask("Enter file path: ")
	if err != nil {
		return err
	}
	path := m.resolve(strings.TrimSpace(raw))

	info, err := tags.Read(path)
	if err != nil {
		m.println(errmsg.FormatWith(errmsg.OpImportFile, path, err))
		return nil
	}
	if err := m.pl.Add(info.Title, info.Artist, info.Seconds()); err != nil {
		m.println(errmsg.FormatWith(errmsg.OpSongAdd, info.Title, err))
		return nil
	}
	m.println(status.Imported(playlist.SongView{
		Title:    info.Title,
		Artist:   info.Artist,
		Duration: info.Seconds(),
	}))
	return nil
}

func (m *Menu) list(songs []playlist.SongView) {
	for _, s := range songs {
		m.println(status.SongLine(s))
	}
}

// ask prints a prompt and reads one line.
func (m *Menu) ask(prompt string) (string, error) {
	m.print(prompt)
	return m.readLine()
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSuffix(m.in.Text(), "\r"), nil
}

func (m *Menu) print(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.out, s)
}

func (m *Menu) println(s string) {
	m.print(s + "\n")
}
