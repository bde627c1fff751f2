package catalog

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunecrate/internal/models"
	"tunecrate/internal/store"
)

func newService() (*Service, *store.Catalog) {
	c := store.NewCatalog()
	return New(c, zerolog.Nop()), c
}

func TestAddSong_ForcesUploaderAsCreator(t *testing.T) {
	svc, c := newService()
	artist := &models.User{Username: "lunarivers", Role: models.RoleArtist}

	s, added, err := svc.AddSong(context.Background(), artist, "Sunrise Echoes", 212)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "lunarivers", s.Creator)
	assert.True(t, c.Contains(s))
}

func TestAddSong_Validation(t *testing.T) {
	svc, _ := newService()
	artist := &models.User{Username: "lunarivers", Role: models.RoleArtist}
	ctx := context.Background()

	_, _, err := svc.AddSong(ctx, artist, "", 212)
	assert.ErrorIs(t, err, models.ErrInvalidSong)

	_, _, err = svc.AddSong(ctx, artist, "Marathon", 601)
	assert.ErrorIs(t, err, models.ErrInvalidSong)
}

func TestAddSong_Duplicate(t *testing.T) {
	svc, _ := newService()
	artist := &models.User{Username: "lunarivers", Role: models.RoleArtist}
	ctx := context.Background()

	_, added, err := svc.AddSong(ctx, artist, "Sunrise Echoes", 212)
	require.NoError(t, err)
	require.True(t, added)

	_, added, err = svc.AddSong(ctx, artist, "SUNRISE ECHOES", 300)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestRemoveOwnSong(t *testing.T) {
	svc, c := newService()
	artist := &models.User{Username: "lunarivers", Role: models.RoleArtist}
	ctx := context.Background()

	s, _, err := svc.AddSong(ctx, artist, "Sunrise Echoes", 212)
	require.NoError(t, err)

	other, err := models.NewSong("Neon Reflections", "cityghosts", 265)
	require.NoError(t, err)
	c.Add(other)

	_, err = svc.RemoveOwnSong(ctx, artist, other)
	assert.ErrorIs(t, err, ErrNotSongOwner)
	assert.True(t, c.Contains(other))

	removed, err := svc.RemoveOwnSong(ctx, artist, s)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, c.Contains(s))

	removed, err = svc.RemoveOwnSong(ctx, artist, s)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSearch(t *testing.T) {
	svc, c := newService()
	ctx := context.Background()

	for _, raw := range []struct {
		title, creator string
		duration       int
	}{
		{"Sunrise Echoes", "lunarivers", 212},
		{"Echo Chamber", "cityghosts", 233},
	} {
		s, err := models.NewSong(raw.title, raw.creator, raw.duration)
		require.NoError(t, err)
		require.True(t, c.Add(s))
	}

	exact, err := svc.SearchByTitle(ctx, "sunrise echoes")
	require.NoError(t, err)
	assert.Len(t, exact, 1)

	partial, err := svc.SearchByPartialTitle(ctx, "echo")
	require.NoError(t, err)
	assert.Len(t, partial, 2)

	byArtist, err := svc.SongsByArtist(ctx, "cityghosts")
	require.NoError(t, err)
	assert.Len(t, byArtist, 1)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
