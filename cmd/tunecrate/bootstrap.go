package main

import (
	"context"
	"errors"
	"fmt"

	"tunecrate/internal/app/catalog"
	"tunecrate/internal/app/playlists"
	"tunecrate/internal/models"
	"tunecrate/internal/store"
)

// seedDemoData populates the fresh in-memory state with demo accounts, a
// small catalog, and one starter playlist so an interactive session has
// something to browse.
func seedDemoData(st *store.Store, catalogSvc *catalog.Service, playlistSvc *playlists.Service) error {
	ctx := context.Background()

	type seedAccount struct {
		email    string
		username string
		password string
		role     models.Role
	}

	accounts := []seedAccount{
		{"admin@tunecrate.local", "admin", "admin123", models.RoleAdmin},
		{"luna@tunecrate.local", "lunarivers", "firstlight", models.RoleArtist},
		{"ghosts@tunecrate.local", "cityghosts", "afterdark", models.RoleArtist},
		{"demo@tunecrate.local", "demo", "demo123", models.RoleListener},
	}

	for _, a := range accounts {
		if _, err := st.CreateUser(a.email, a.username, a.password, a.role); err != nil &&
			!errors.Is(err, store.ErrUserExists) {
			return fmt.Errorf("seed account %q: %w", a.username, err)
		}
	}

	type seedSong struct {
		artist   string
		title    string
		duration int
	}

	songs := []seedSong{
		{"lunarivers", "Sunrise Echoes", 212},
		{"lunarivers", "Golden Hour Groove", 248},
		{"lunarivers", "Coffeehouse Conversation", 198},
		{"cityghosts", "Neon Reflections", 265},
		{"cityghosts", "Echo Chamber", 233},
		{"cityghosts", "Blue Midnight", 241},
	}

	for _, entry := range songs {
		artist, ok := st.FindByUsername(entry.artist)
		if !ok {
			return fmt.Errorf("seed song %q: unknown artist %q", entry.title, entry.artist)
		}
		if _, _, err := catalogSvc.AddSong(ctx, artist, entry.title, entry.duration); err != nil {
			return fmt.Errorf("seed song %q: %w", entry.title, err)
		}
	}

	listener, ok := st.FindByUsername("demo")
	if !ok || len(listener.Library) > 0 {
		return nil
	}

	starter, err := playlistSvc.Create(ctx, listener, "Morning Spins")
	if err != nil {
		return fmt.Errorf("seed starter playlist: %w", err)
	}
	for _, song := range st.Catalog().FindByArtist("lunarivers") {
		starter.AddSong(song)
	}

	return nil
}
