package playlist

// Current returns the current song, or false if no song is selected.
func (p *Playlist) Current() (SongView, bool) {
	if !p.valid(p.current) {
		return SongView{}, false
	}
	return p.view(p.current), true
}

// CurrentIndex returns the position of the current song counted from the
// head (-1 if none).
func (p *Playlist) CurrentIndex() int {
	if !p.valid(p.current) {
		return none
	}
	pos := 0
	for idx := p.head; idx != p.current; idx = p.slots[idx].next {
		pos++
	}
	return pos
}

// HasNext returns true if there's a song after the current one.
func (p *Playlist) HasNext() bool {
	return p.valid(p.current) && p.slots[p.current].next != none
}

// HasPrev returns true if there's a song before the current one.
func (p *Playlist) HasPrev() bool {
	return p.valid(p.current) && p.slots[p.current].prev != none
}

// Next advances the cursor to the following song.
// Returns false at the end of the playlist (or with no current song),
// leaving the cursor unchanged.
func (p *Playlist) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.current = p.slots[p.current].next
	return true
}

// Prev moves the cursor to the preceding song.
// Returns false at the beginning of the playlist (or with no current song),
// leaving the cursor unchanged.
func (p *Playlist) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.current = p.slots[p.current].prev
	return true
}

func (p *Playlist) valid(idx int) bool {
	return idx >= 0 && idx < len(p.slots) && p.slots[idx].live
}
