// Package admin implements cross-cutting administrative operations over the
// catalog and every listener's library.
package admin

import (
	"context"

	"github.com/rs/zerolog"

	"tunecrate/internal/models"
	"tunecrate/internal/store"
)

// SystemRemoval reports the two halves of a system-wide song removal.
// Either half can find nothing while the other succeeds.
type SystemRemoval struct {
	RemovedFromCatalog   bool
	RemovedFromPlaylists int
}

// Service performs administrative workflows against the shared state.
type Service struct {
	store *store.Store
	log   zerolog.Logger
}

// New builds a Service over the system state.
func New(st *store.Store, logger zerolog.Logger) *Service {
	return &Service{store: st, log: logger}
}

// AddSong adds any artist's song to the catalog on an admin's behalf.
func (s *Service) AddSong(ctx context.Context, title, creator string, durationSeconds int) (models.Song, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Song{}, false, err
	}
	song, err := models.NewSong(title, creator, durationSeconds)
	if err != nil {
		return models.Song{}, false, err
	}
	return song, s.store.Catalog().Add(song), nil
}

// DeleteSongFromCatalog removes the song from the catalog only. Listener
// playlists keep their copies; DeleteSongFromSystem is the cascading
// variant, kept deliberately separate.
func (s *Service) DeleteSongFromCatalog(ctx context.Context, song models.Song) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.store.Catalog().Remove(song), nil
}

// RemoveSongFromAllPlaylists strips the song from every playlist given and
// returns the total number of removals. Each playlist is drained until no
// copy remains, and every playlist is visited regardless of earlier hits.
func (s *Service) RemoveSongFromAllPlaylists(ctx context.Context, song models.Song, playlists []*models.Playlist) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	removed := 0
	for _, p := range playlists {
		for p.RemoveSong(song) {
			removed++
		}
	}
	return removed, nil
}

// DeleteSongFromSystem removes the song from the catalog and from every
// listener's playlists. Both halves always run; the result reports each
// half independently.
func (s *Service) DeleteSongFromSystem(ctx context.Context, song models.Song) (SystemRemoval, error) {
	if err := ctx.Err(); err != nil {
		return SystemRemoval{}, err
	}
	result := SystemRemoval{RemovedFromCatalog: s.store.Catalog().Remove(song)}
	count, err := s.RemoveSongFromAllPlaylists(ctx, song, s.store.AllPlaylists())
	if err != nil {
		return result, err
	}
	result.RemovedFromPlaylists = count
	s.log.Info().
		Str("title", song.Title).
		Str("creator", song.Creator).
		Bool("removed_from_catalog", result.RemovedFromCatalog).
		Int("removed_from_playlists", count).
		Msg("song removed from system")
	return result, nil
}

// DeleteAllPlaylistsForListener clears the listener's entire library in one
// irreversible operation.
func (s *Service) DeleteAllPlaylistsForListener(ctx context.Context, listener *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	listener.ClearLibrary()
	s.log.Info().Str("listener", listener.Username).Msg("all playlists deleted for listener")
	return nil
}

// DeleteListener removes the listener account and its playlists from the
// system, reporting whether the username was known.
func (s *Service) DeleteListener(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	deleted := s.store.DeleteUser(username)
	if deleted {
		s.log.Info().Str("listener", username).Msg("listener removed from system")
	}
	return deleted, nil
}

// Users lists every registered account in registration order.
func (s *Service) Users(ctx context.Context) ([]*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Users(), nil
}
