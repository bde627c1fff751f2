// Package playlists implements listener library workflows: creating,
// addressing, and tearing down playlists, and managing their tracks.
package playlists

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tunecrate/internal/models"
)

// ErrNotListener signals a library operation on a non-listener account.
var ErrNotListener = errors.New("account has no playlist library")

// Service coordinates playlist operations for listener accounts.
type Service struct {
	log zerolog.Logger
}

// New builds a Service.
func New(logger zerolog.Logger) *Service {
	return &Service{log: logger}
}

// Create appends a new, empty playlist to the listener's library.
func (s *Service) Create(ctx context.Context, listener *models.User, name string) (*models.Playlist, error) {
	if err := s.guard(ctx, listener); err != nil {
		return nil, err
	}
	p := listener.CreatePlaylist(name)
	s.log.Info().Str("playlist", p.Name).Str("owner", p.Creator).Msg("playlist created")
	return p, nil
}

// List returns the listener's playlists in library order.
func (s *Service) List(ctx context.Context, listener *models.User) ([]*models.Playlist, error) {
	if err := s.guard(ctx, listener); err != nil {
		return nil, err
	}
	out := make([]*models.Playlist, len(listener.Library))
	copy(out, listener.Library)
	return out, nil
}

// Get returns the playlist at the given library index.
func (s *Service) Get(ctx context.Context, listener *models.User, index int) (*models.Playlist, error) {
	if err := s.guard(ctx, listener); err != nil {
		return nil, err
	}
	return listener.PlaylistAt(index)
}

// Delete removes the playlist at the given library index. Later playlists
// shift down by one.
func (s *Service) Delete(ctx context.Context, listener *models.User, index int) error {
	if err := s.guard(ctx, listener); err != nil {
		return err
	}
	if err := listener.DeletePlaylistAt(index); err != nil {
		return err
	}
	s.log.Info().Str("owner", listener.Username).Int("index", index).Msg("playlist deleted")
	return nil
}

// Clear drops the listener's entire library.
func (s *Service) Clear(ctx context.Context, listener *models.User) error {
	if err := s.guard(ctx, listener); err != nil {
		return err
	}
	listener.ClearLibrary()
	s.log.Info().Str("owner", listener.Username).Msg("library cleared")
	return nil
}

// AddSong adds a catalog song to the playlist at the given library index.
// A false return with a nil error means the playlist already has the song.
func (s *Service) AddSong(ctx context.Context, listener *models.User, index int, song models.Song) (bool, error) {
	if err := s.guard(ctx, listener); err != nil {
		return false, err
	}
	p, err := listener.PlaylistAt(index)
	if err != nil {
		return false, err
	}
	return p.AddSong(song), nil
}

// RemoveSongAt removes and returns the track at songIndex from the playlist
// at playlistIndex.
func (s *Service) RemoveSongAt(ctx context.Context, listener *models.User, playlistIndex, songIndex int) (models.Song, error) {
	if err := s.guard(ctx, listener); err != nil {
		return models.Song{}, err
	}
	p, err := listener.PlaylistAt(playlistIndex)
	if err != nil {
		return models.Song{}, err
	}
	return p.RemoveSongAt(songIndex)
}

func (s *Service) guard(ctx context.Context, listener *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if listener == nil || listener.Role != models.RoleListener {
		return ErrNotListener
	}
	return nil
}
