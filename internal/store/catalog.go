package store

import (
	"strings"

	"tunecrate/internal/models"
)

// Catalog is the single, system-wide set of known songs. Insertion order is
// preserved for index-based display and removal; uniqueness follows Song
// identity (case-insensitive title plus creator).
type Catalog struct {
	songs []models.Song
}

// NewCatalog builds an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add inserts the song at the end unless an equal one is already present.
// A duplicate is a routine outcome, not an error.
func (c *Catalog) Add(song models.Song) bool {
	if song.IsZero() || c.Contains(song) {
		return false
	}
	c.songs = append(c.songs, song)
	return true
}

// Remove deletes the first entry equal to song. It never touches playlists;
// the admin system-wide removal is a separate, explicit composition.
func (c *Catalog) Remove(song models.Song) bool {
	for i, s := range c.songs {
		if s.Equal(song) {
			c.songs = append(c.songs[:i], c.songs[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether an equal song is present.
func (c *Catalog) Contains(song models.Song) bool {
	for _, s := range c.songs {
		if s.Equal(song) {
			return true
		}
	}
	return false
}

// Len returns the number of songs in the catalog.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// All returns the catalog contents in insertion order.
func (c *Catalog) All() []models.Song {
	out := make([]models.Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// At returns the song at the given catalog index.
func (c *Catalog) At(index int) (models.Song, error) {
	if index < 0 || index >= len(c.songs) {
		return models.Song{}, models.ErrIndexOutOfRange
	}
	return c.songs[index], nil
}

// FindByExactTitle returns every song whose title matches case-insensitively.
// The creator is not considered, so two artists' covers both match.
func (c *Catalog) FindByExactTitle(title string) []models.Song {
	var out []models.Song
	for _, s := range c.songs {
		if strings.EqualFold(s.Title, title) {
			out = append(out, s)
		}
	}
	return out
}

// FindByPartialTitle returns every song whose title contains substr,
// case-insensitively.
func (c *Catalog) FindByPartialTitle(substr string) []models.Song {
	needle := strings.ToLower(substr)
	var out []models.Song
	for _, s := range c.songs {
		if strings.Contains(strings.ToLower(s.Title), needle) {
			out = append(out, s)
		}
	}
	return out
}

// FindByArtist returns every song uploaded by the exact artist username.
func (c *Catalog) FindByArtist(username string) []models.Song {
	var out []models.Song
	for _, s := range c.songs {
		if s.Creator == username {
			out = append(out, s)
		}
	}
	return out
}
