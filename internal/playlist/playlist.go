// Package playlist implements an ordered song list with a movable cursor.
//
// Entries are kept in an index arena: each slot links to its neighbors by
// slot index, and removed slots are recycled through a free list. The cursor
// is an optional slot index that Remove repairs before returning.
package playlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// none marks an absent slot (no neighbor, unset cursor, empty head/tail).
const none = -1

var (
	// ErrEmpty is returned by views that require at least one song.
	ErrEmpty = errors.New("playlist is empty")
	// ErrEmptyTitle is returned when adding a song without a title.
	ErrEmptyTitle = errors.New("song title is empty")
	// ErrNegativeDuration is returned when adding a song with a negative
	// duration under DurationReject.
	ErrNegativeDuration = errors.New("song duration is negative")
)

// Song is a single playlist record. Duration is in whole seconds.
type Song struct {
	Title    string
	Artist   string
	Duration int
}

// SongView is the read-only projection of a Song handed to callers.
type SongView struct {
	Title    string
	Artist   string
	Duration int
}

// DurationPolicy selects how Add treats negative durations.
type DurationPolicy int

const (
	DurationReject DurationPolicy = iota // return ErrNegativeDuration
	DurationClamp                        // store 0
	DurationAccept                       // store as given
)

// String returns the config name of the policy.
func (p DurationPolicy) String() string {
	switch p {
	case DurationClamp:
		return "clamp"
	case DurationAccept:
		return "accept"
	default:
		return "reject"
	}
}

// ParseDurationPolicy maps a config name to a policy. Unknown names map to
// DurationReject and ok=false.
func ParseDurationPolicy(s string) (policy DurationPolicy, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return DurationReject, true
	case "clamp":
		return DurationClamp, true
	case "accept":
		return DurationAccept, true
	}
	return DurationReject, false
}

// Option configures a Playlist.
type Option func(*Playlist)

// WithDurationPolicy sets the negative duration policy (default DurationReject).
func WithDurationPolicy(p DurationPolicy) Option {
	return func(pl *Playlist) {
		pl.policy = p
	}
}

type slot struct {
	song       Song
	prev, next int
	live       bool
}

// Playlist holds an ordered collection of songs and a cursor.
// It is not safe for concurrent use; callers serialize access.
type Playlist struct {
	slots   []slot
	free    []int
	head    int
	tail    int
	current int
	size    int
	policy  DurationPolicy
}

// New creates an empty playlist.
func New(opts ...Option) *Playlist {
	p := &Playlist{
		head:    none,
		tail:    none,
		current: none,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends a song at the tail. The first song added to an empty playlist
// becomes the current song. On error the playlist is unchanged.
func (p *Playlist) Add(title, artist string, duration int) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if duration < 0 {
		switch p.policy {
		case DurationClamp:
			duration = 0
		case DurationAccept:
		default:
			return fmt.Errorf("%w: %d", ErrNegativeDuration, duration)
		}
	}

	idx := p.alloc(Song{Title: title, Artist: artist, Duration: duration})
	if p.tail == none {
		p.head = idx
		p.tail = idx
		p.current = idx
	} else {
		p.slots[p.tail].next = idx
		p.slots[idx].prev = p.tail
		p.tail = idx
	}
	p.size++
	return nil
}

// Remove deletes the first song (head to tail) whose title equals title.
// Returns false if no song matches, leaving the playlist unchanged.
//
// If the removed song was current, the cursor moves to its successor, else
// to its predecessor, else it becomes unset.
func (p *Playlist) Remove(title string) bool {
	idx := p.find(title)
	if idx == none {
		return false
	}

	s := p.slots[idx]
	if s.prev != none {
		p.slots[s.prev].next = s.next
	} else {
		p.head = s.next
	}
	if s.next != none {
		p.slots[s.next].prev = s.prev
	} else {
		p.tail = s.prev
	}

	if p.current == idx {
		switch {
		case s.next != none:
			p.current = s.next
		case s.prev != none:
			p.current = s.prev
		default:
			p.current = none
		}
	}

	p.release(idx)
	p.size--
	return true
}

// Clear removes every song and unsets the cursor.
func (p *Playlist) Clear() {
	clear(p.slots)
	p.slots = p.slots[:0]
	p.free = p.free[:0]
	p.head = none
	p.tail = none
	p.current = none
	p.size = 0
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return p.size
}

// IsEmpty returns true if the playlist has no songs.
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// TotalDuration returns the sum of all song durations in seconds.
func (p *Playlist) TotalDuration() int {
	total := 0
	for idx := p.head; idx != none; idx = p.slots[idx].next {
		total += p.slots[idx].song.Duration
	}
	return total
}

// All yields every song from head to tail. The loop body may Remove the
// song it was just given; any other edit during iteration can end it early.
func (p *Playlist) All() iter.Seq[SongView] {
	return func(yield func(SongView) bool) {
		idx := p.head
		for idx != none && p.slots[idx].live {
			next := p.slots[idx].next
			if !yield(p.view(idx)) {
				return
			}
			idx = next
		}
	}
}

// List returns every song from head to tail. Empty playlists yield an empty
// slice, never nil.
func (p *Playlist) List() []SongView {
	result := make([]SongView, 0, p.size)
	for v := range p.All() {
		result = append(result, v)
	}
	return result
}

// Repeat returns the playlist from the start, exactly as List does.
// Returns ErrEmpty if there is nothing to repeat.
func (p *Playlist) Repeat() ([]SongView, error) {
	if p.size == 0 {
		return nil, ErrEmpty
	}
	return p.List(), nil
}

func (p *Playlist) view(idx int) SongView {
	s := p.slots[idx].song
	return SongView{Title: s.Title, Artist: s.Artist, Duration: s.Duration}
}

// find returns the slot of the first song titled title, or none.
func (p *Playlist) find(title string) int {
	for idx := p.head; idx != none; idx = p.slots[idx].next {
		if p.slots[idx].song.Title == title {
			return idx
		}
	}
	return none
}

// alloc stores song in a free slot, reusing released slots first.
func (p *Playlist) alloc(song Song) int {
	s := slot{song: song, prev: none, next: none, live: true}
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[idx] = s
		return idx
	}
	p.slots = append(p.slots, s)
	return len(p.slots) - 1
}

// release zeroes a slot so no song data outlives removal.
func (p *Playlist) release(idx int) {
	p.slots[idx] = slot{prev: none, next: none}
	p.free = append(p.free, idx)
}
