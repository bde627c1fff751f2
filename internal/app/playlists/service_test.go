package playlists

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunecrate/internal/models"
)

func song(t *testing.T, title, creator string, duration int) models.Song {
	t.Helper()
	s, err := models.NewSong(title, creator, duration)
	require.NoError(t, err)
	return s
}

func TestCreateAndList(t *testing.T) {
	svc := New(zerolog.Nop())
	listener := &models.User{Username: "testuser", Role: models.RoleListener}
	ctx := context.Background()

	p, err := svc.Create(ctx, listener, "Favorites")
	require.NoError(t, err)
	assert.Equal(t, "Favorites", p.Name)
	assert.Equal(t, "testuser", p.Creator)

	library, err := svc.List(ctx, listener)
	require.NoError(t, err)
	require.Len(t, library, 1)
	assert.Same(t, p, library[0])
}

func TestRoleGating(t *testing.T) {
	svc := New(zerolog.Nop())
	artist := &models.User{Username: "artie", Role: models.RoleArtist}
	ctx := context.Background()

	_, err := svc.Create(ctx, artist, "Nope")
	assert.ErrorIs(t, err, ErrNotListener)

	_, err = svc.List(ctx, nil)
	assert.ErrorIs(t, err, ErrNotListener)

	err = svc.Clear(ctx, artist)
	assert.ErrorIs(t, err, ErrNotListener)
}

func TestDeleteShiftsIndices(t *testing.T) {
	svc := New(zerolog.Nop())
	listener := &models.User{Username: "testuser", Role: models.RoleListener}
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, listener, name)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, listener, 1))

	p, err := svc.Get(ctx, listener, 1)
	require.NoError(t, err)
	assert.Equal(t, "C", p.Name)

	err = svc.Delete(ctx, listener, 2)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
}

func TestAddAndRemoveSong(t *testing.T) {
	svc := New(zerolog.Nop())
	listener := &models.User{Username: "testuser", Role: models.RoleListener}
	ctx := context.Background()

	_, err := svc.Create(ctx, listener, "Favorites")
	require.NoError(t, err)

	s := song(t, "Bing Bong", "Artie", 69)

	added, err := svc.AddSong(ctx, listener, 0, s)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.AddSong(ctx, listener, 0, s)
	require.NoError(t, err)
	assert.False(t, added, "duplicate add should be refused")

	_, err = svc.AddSong(ctx, listener, 4, s)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)

	removed, err := svc.RemoveSongAt(ctx, listener, 0, 0)
	require.NoError(t, err)
	assert.True(t, removed.Equal(s))

	_, err = svc.RemoveSongAt(ctx, listener, 0, 0)
	assert.ErrorIs(t, err, models.ErrEmptyPlaylist)
}

func TestClear(t *testing.T) {
	svc := New(zerolog.Nop())
	listener := &models.User{Username: "testuser", Role: models.RoleListener}
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		_, err := svc.Create(ctx, listener, name)
		require.NoError(t, err)
	}
	require.NoError(t, svc.Clear(ctx, listener))

	library, err := svc.List(ctx, listener)
	require.NoError(t, err)
	assert.Empty(t, library)
}
