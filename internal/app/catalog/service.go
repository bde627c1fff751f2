// Package catalog exposes search and artist-facing catalog workflows over
// the shared song catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tunecrate/internal/models"
	"tunecrate/internal/store"
)

// ErrNotSongOwner signals an artist trying to remove another artist's upload.
var ErrNotSongOwner = errors.New("song belongs to another artist")

// Service wraps the shared catalog with workflow-level rules.
type Service struct {
	catalog *store.Catalog
	log     zerolog.Logger
}

// New builds a Service over the shared catalog.
func New(catalog *store.Catalog, logger zerolog.Logger) *Service {
	return &Service{catalog: catalog, log: logger}
}

// AddSong validates and adds a track on behalf of its uploader. The creator
// field is always the uploading artist's username, never caller-supplied.
// A false return with a nil error means the song is already in the catalog.
func (s *Service) AddSong(ctx context.Context, artist *models.User, title string, durationSeconds int) (models.Song, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Song{}, false, err
	}
	song, err := models.NewSong(title, artist.Username, durationSeconds)
	if err != nil {
		return models.Song{}, false, err
	}
	added := s.catalog.Add(song)
	if added {
		s.log.Info().Str("title", song.Title).Str("creator", song.Creator).Msg("song added to catalog")
	}
	return song, added, nil
}

// RemoveOwnSong deletes one of the artist's own uploads from the catalog.
// Playlists referencing the song keep their copies; only the admin
// system-wide removal cascades.
func (s *Service) RemoveOwnSong(ctx context.Context, artist *models.User, song models.Song) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if song.Creator != artist.Username {
		return false, ErrNotSongOwner
	}
	removed := s.catalog.Remove(song)
	if removed {
		s.log.Info().Str("title", song.Title).Str("creator", song.Creator).Msg("song removed from catalog")
	}
	return removed, nil
}

// SongsByArtist lists every upload by the exact artist username.
func (s *Service) SongsByArtist(ctx context.Context, username string) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.FindByArtist(username), nil
}

// SearchByTitle returns songs matching the exact title, case-insensitively.
func (s *Service) SearchByTitle(ctx context.Context, title string) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.FindByExactTitle(title), nil
}

// SearchByPartialTitle returns songs whose title contains the given text.
func (s *Service) SearchByPartialTitle(ctx context.Context, substr string) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.FindByPartialTitle(substr), nil
}

// All returns the full catalog in insertion order.
func (s *Service) All(ctx context.Context) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.All(), nil
}
