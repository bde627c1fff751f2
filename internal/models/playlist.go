package models

import "errors"

var (
	// ErrEmptyPlaylist signals a removal from a playlist with no tracks.
	ErrEmptyPlaylist = errors.New("playlist has no songs")
	// ErrIndexOutOfRange signals an index outside the collection bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Placeholders substituted when a playlist is created without a name or owner.
const (
	DefaultPlaylistName    = "Untitled Playlist"
	DefaultPlaylistCreator = "unknown"
)

// Playlist is an ordered, named collection of songs owned by one listener.
// Track order is insertion order; duplicate tracks (by Song identity) are
// rejected on add.
type Playlist struct {
	Name      string
	Creator   string
	Tracklist []Song
}

// NewPlaylist builds an empty playlist, substituting placeholders for blank
// fields.
func NewPlaylist(name, creator string) *Playlist {
	if name == "" {
		name = DefaultPlaylistName
	}
	if creator == "" {
		creator = DefaultPlaylistCreator
	}
	return &Playlist{Name: name, Creator: creator}
}

// AddSong appends a song unless it is zero or an equal one is already present.
func (p *Playlist) AddSong(song Song) bool {
	if song.IsZero() {
		return false
	}
	for _, s := range p.Tracklist {
		if s.Equal(song) {
			return false
		}
	}
	p.Tracklist = append(p.Tracklist, song)
	return true
}

// RemoveSongAt removes and returns the track at index. Later tracks shift
// down by one.
func (p *Playlist) RemoveSongAt(index int) (Song, error) {
	if len(p.Tracklist) == 0 {
		return Song{}, ErrEmptyPlaylist
	}
	if index < 0 || index >= len(p.Tracklist) {
		return Song{}, ErrIndexOutOfRange
	}
	removed := p.Tracklist[index]
	p.Tracklist = append(p.Tracklist[:index], p.Tracklist[index+1:]...)
	return removed, nil
}

// RemoveSong removes the first track equal to song, reporting whether one was
// found. Callers that need every occurrence gone loop until it returns false.
func (p *Playlist) RemoveSong(song Song) bool {
	for i, s := range p.Tracklist {
		if s.Equal(song) {
			p.Tracklist = append(p.Tracklist[:i], p.Tracklist[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether an equal track is present.
func (p *Playlist) Contains(song Song) bool {
	for _, s := range p.Tracklist {
		if s.Equal(song) {
			return true
		}
	}
	return false
}

// TotalDurationSeconds sums the durations of every track.
func (p *Playlist) TotalDurationSeconds() int {
	total := 0
	for _, s := range p.Tracklist {
		total += s.DurationSeconds
	}
	return total
}

// TotalDurationFormatted renders the summed duration as "MM:SS" with the
// minute count uncapped.
func (p *Playlist) TotalDurationFormatted() string {
	return formatDuration(p.TotalDurationSeconds())
}
