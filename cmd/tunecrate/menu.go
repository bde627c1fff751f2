package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"tunecrate/internal/app/admin"
	"tunecrate/internal/app/catalog"
	"tunecrate/internal/app/playlists"
	"tunecrate/internal/app/users"
	"tunecrate/internal/models"
	"tunecrate/internal/store"
)

// errQuit unwinds the menu loop when the user asks to exit.
var errQuit = errors.New("quit requested")

// menu drives the interactive console session. It only parses input, calls
// into the services, and prints results; every rule lives below it.
type menu struct {
	rl        *readline.Instance
	store     *store.Store
	users     *users.Service
	catalogs  *catalog.Service
	playlists *playlists.Service
	admins    *admin.Service

	user    *models.User
	session string
}

// Run loops on the welcome menu until the user exits or input ends.
func (m *menu) Run(ctx context.Context) error {
	fmt.Println("Welcome to Tunecrate!")
	for {
		fmt.Println("\n1 = Create Account | 2 = Login | 0 = Exit")
		choice, err := m.prompt("Choice: ")
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case "1":
			err = m.register(ctx)
		case "2":
			err = m.login(ctx)
		case "0":
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println("Unknown option.")
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *menu) finish(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		fmt.Println("Goodbye!")
		return nil
	}
	return err
}

func (m *menu) register(ctx context.Context) error {
	email, err := m.prompt("Email: ")
	if err != nil {
		return err
	}
	username, err := m.prompt("Username: ")
	if err != nil {
		return err
	}
	password, err := m.prompt("Password: ")
	if err != nil {
		return err
	}
	roleRaw, err := m.prompt("Role (listener/artist): ")
	if err != nil {
		return err
	}

	role := models.RoleListener
	if strings.EqualFold(roleRaw, "artist") {
		role = models.RoleArtist
	}

	user, err := m.users.Signup(ctx, email, username, password, role)
	switch {
	case errors.Is(err, store.ErrUserExists):
		fmt.Println("That username is already taken.")
	case errors.Is(err, store.ErrEmailTaken):
		fmt.Println("That email is already registered.")
	case err != nil:
		fmt.Println("Could not create account:", err)
	default:
		fmt.Printf("Account created. Welcome, %s!\n", user.Username)
	}
	return nil
}

func (m *menu) login(ctx context.Context) error {
	username, err := m.prompt("Username: ")
	if err != nil {
		return err
	}
	password, err := m.prompt("Password: ")
	if err != nil {
		return err
	}

	user, session, err := m.users.Login(ctx, username, password)
	if err != nil {
		fmt.Println("Login failed:", err)
		return nil
	}
	fmt.Printf("Login successful! Welcome %s\n", user.Username)

	m.user = user
	m.session = session
	defer func() {
		m.user = nil
		m.session = ""
	}()

	switch user.Role {
	case models.RoleListener:
		return m.listenerMenu(ctx)
	case models.RoleArtist:
		return m.artistMenu(ctx)
	case models.RoleAdmin:
		return m.adminMenu(ctx)
	}
	return nil
}

func (m *menu) listenerMenu(ctx context.Context) error {
	for {
		fmt.Println("\n1 = New Playlist | 2 = My Library | 3 = View Playlist | 4 = Add Song" +
			" | 5 = Remove Song | 6 = Delete Playlist | 7 = Clear Library | 8 = Search Catalog | 0 = Logout")
		choice, err := m.prompt("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := m.prompt("Playlist name: ")
			if err != nil {
				return err
			}
			p, err := m.playlists.Create(ctx, m.user, name)
			if err != nil {
				fmt.Println("Could not create playlist:", err)
				continue
			}
			fmt.Printf("Created playlist %q.\n", p.Name)
		case "2":
			m.printLibrary(ctx)
		case "3":
			index, err := m.promptIndex("Playlist index: ")
			if err != nil {
				return err
			}
			p, getErr := m.playlists.Get(ctx, m.user, index)
			if getErr != nil {
				fmt.Println(getErr)
				continue
			}
			m.printPlaylist(p)
		case "4":
			if err := m.addSongToPlaylist(ctx); err != nil {
				return err
			}
		case "5":
			playlistIndex, err := m.promptIndex("Playlist index: ")
			if err != nil {
				return err
			}
			songIndex, err := m.promptIndex("Song index: ")
			if err != nil {
				return err
			}
			removed, rmErr := m.playlists.RemoveSongAt(ctx, m.user, playlistIndex, songIndex)
			if rmErr != nil {
				fmt.Println(rmErr)
				continue
			}
			fmt.Printf("Removed %s.\n", removed)
		case "6":
			index, err := m.promptIndex("Playlist index: ")
			if err != nil {
				return err
			}
			if delErr := m.playlists.Delete(ctx, m.user, index); delErr != nil {
				fmt.Println(delErr)
				continue
			}
			fmt.Println("Playlist deleted.")
		case "7":
			if clearErr := m.playlists.Clear(ctx, m.user); clearErr != nil {
				fmt.Println(clearErr)
				continue
			}
			fmt.Println("Library cleared.")
		case "8":
			if err := m.searchCatalog(ctx); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (m *menu) artistMenu(ctx context.Context) error {
	for {
		fmt.Println("\n1 = Upload Song | 2 = My Songs | 3 = Remove Song | 0 = Logout")
		choice, err := m.prompt("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			title, err := m.prompt("Title: ")
			if err != nil {
				return err
			}
			duration, err := m.promptIndex("Duration (seconds): ")
			if err != nil {
				return err
			}
			song, added, addErr := m.catalogs.AddSong(ctx, m.user, title, duration)
			switch {
			case addErr != nil:
				fmt.Println("Could not add song:", addErr)
			case !added:
				fmt.Println("That song is already in the catalog.")
			default:
				fmt.Printf("Added %s.\n", song)
			}
		case "2":
			songs, listErr := m.catalogs.SongsByArtist(ctx, m.user.Username)
			if listErr != nil {
				fmt.Println(listErr)
				continue
			}
			if len(songs) == 0 {
				fmt.Printf("%s does not have any songs.\n", m.user.Username)
				continue
			}
			fmt.Printf("=== %s's catalog ===\n", m.user.Username)
			printSongs(songs)
		case "3":
			song, pickErr, inputErr := m.pickOwnSong(ctx)
			if inputErr != nil {
				return inputErr
			}
			if pickErr != nil {
				fmt.Println(pickErr)
				continue
			}
			removed, rmErr := m.catalogs.RemoveOwnSong(ctx, m.user, song)
			switch {
			case rmErr != nil:
				fmt.Println(rmErr)
			case !removed:
				fmt.Println("Song not found in catalog.")
			default:
				fmt.Printf("Removed %s from the catalog.\n", song)
			}
		case "0":
			return nil
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (m *menu) adminMenu(ctx context.Context) error {
	for {
		fmt.Println("\n1 = Catalog | 2 = Add Song | 3 = Delete Song (catalog only)" +
			" | 4 = Delete Song (system-wide) | 5 = Purge Listener Playlists | 6 = Delete Listener | 7 = Users | 0 = Logout")
		choice, err := m.prompt("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			songs, listErr := m.catalogs.All(ctx)
			if listErr != nil {
				fmt.Println(listErr)
				continue
			}
			printSongs(songs)
		case "2":
			title, err := m.prompt("Title: ")
			if err != nil {
				return err
			}
			creator, err := m.prompt("Artist username: ")
			if err != nil {
				return err
			}
			duration, err := m.promptIndex("Duration (seconds): ")
			if err != nil {
				return err
			}
			song, added, addErr := m.admins.AddSong(ctx, title, creator, duration)
			switch {
			case addErr != nil:
				fmt.Println("Could not add song:", addErr)
			case !added:
				fmt.Println("That song is already in the catalog.")
			default:
				fmt.Printf("Added %s.\n", song)
			}
		case "3":
			song, pickErr, inputErr := m.pickCatalogSong(ctx)
			if inputErr != nil {
				return inputErr
			}
			if pickErr != nil {
				fmt.Println(pickErr)
				continue
			}
			removed, rmErr := m.admins.DeleteSongFromCatalog(ctx, song)
			if rmErr != nil {
				fmt.Println(rmErr)
				continue
			}
			fmt.Printf("Removed from catalog: %v (playlists untouched).\n", removed)
		case "4":
			if !m.sessionValid() {
				continue
			}
			song, pickErr, inputErr := m.pickCatalogSong(ctx)
			if inputErr != nil {
				return inputErr
			}
			if pickErr != nil {
				fmt.Println(pickErr)
				continue
			}
			result, rmErr := m.admins.DeleteSongFromSystem(ctx, song)
			if rmErr != nil {
				fmt.Println(rmErr)
				continue
			}
			fmt.Printf("Removed from catalog: %v; removed from playlists: %d.\n",
				result.RemovedFromCatalog, result.RemovedFromPlaylists)
		case "5":
			username, err := m.prompt("Listener username: ")
			if err != nil {
				return err
			}
			listener, ok := m.store.FindByUsername(username)
			if !ok || listener.Role != models.RoleListener {
				fmt.Println("No such listener.")
				continue
			}
			if purgeErr := m.admins.DeleteAllPlaylistsForListener(ctx, listener); purgeErr != nil {
				fmt.Println(purgeErr)
				continue
			}
			fmt.Printf("All playlists deleted for %s.\n", username)
		case "6":
			if !m.sessionValid() {
				continue
			}
			username, err := m.prompt("Listener username: ")
			if err != nil {
				return err
			}
			deleted, delErr := m.admins.DeleteListener(ctx, username)
			if delErr != nil {
				fmt.Println(delErr)
				continue
			}
			if !deleted {
				fmt.Println("No such user.")
				continue
			}
			fmt.Printf("Deleted %s.\n", username)
		case "7":
			accounts, listErr := m.admins.Users(ctx)
			if listErr != nil {
				fmt.Println(listErr)
				continue
			}
			for i, u := range accounts {
				fmt.Printf("[%d] - %s\n", i, u)
			}
		case "0":
			return nil
		default:
			fmt.Println("Unknown option.")
		}
	}
}

// addSongToPlaylist searches the catalog, lets the listener pick a result,
// and adds it to one of their playlists.
func (m *menu) addSongToPlaylist(ctx context.Context) error {
	song, pickErr, inputErr := m.pickCatalogSong(ctx)
	if inputErr != nil {
		return inputErr
	}
	if pickErr != nil {
		fmt.Println(pickErr)
		return nil
	}
	index, err := m.promptIndex("Playlist index: ")
	if err != nil {
		return err
	}
	added, addErr := m.playlists.AddSong(ctx, m.user, index, song)
	switch {
	case addErr != nil:
		fmt.Println(addErr)
	case !added:
		fmt.Println("That song is already in the playlist.")
	default:
		fmt.Printf("Added %s.\n", song)
	}
	return nil
}

func (m *menu) searchCatalog(ctx context.Context) error {
	query, err := m.prompt("Search titles for: ")
	if err != nil {
		return err
	}
	songs, searchErr := m.catalogs.SearchByPartialTitle(ctx, query)
	if searchErr != nil {
		fmt.Println(searchErr)
		return nil
	}
	if len(songs) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	printSongs(songs)
	return nil
}

// pickCatalogSong lists the catalog and prompts for an index. The first
// error is a selection problem worth re-prompting for; the second ends the
// session.
func (m *menu) pickCatalogSong(ctx context.Context) (models.Song, error, error) {
	songs, err := m.catalogs.All(ctx)
	if err != nil {
		return models.Song{}, err, nil
	}
	return m.pickSong(songs)
}

func (m *menu) pickOwnSong(ctx context.Context) (models.Song, error, error) {
	songs, err := m.catalogs.SongsByArtist(ctx, m.user.Username)
	if err != nil {
		return models.Song{}, err, nil
	}
	return m.pickSong(songs)
}

func (m *menu) pickSong(songs []models.Song) (models.Song, error, error) {
	if len(songs) == 0 {
		return models.Song{}, errors.New("no songs to choose from"), nil
	}
	printSongs(songs)
	index, err := m.promptIndex("Song index: ")
	if err != nil {
		return models.Song{}, nil, err
	}
	if index < 0 || index >= len(songs) {
		return models.Song{}, models.ErrIndexOutOfRange, nil
	}
	return songs[index], nil, nil
}

func (m *menu) printLibrary(ctx context.Context) {
	library, err := m.playlists.List(ctx, m.user)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(library) == 0 {
		fmt.Println("Your library is empty.")
		return
	}
	for i, p := range library {
		fmt.Printf("[%d] - %s (%d songs, %s)\n", i, p.Name, len(p.Tracklist), p.TotalDurationFormatted())
	}
}

func (m *menu) printPlaylist(p *models.Playlist) {
	fmt.Printf("=== %s by %s ===\n", p.Name, p.Creator)
	printSongs(p.Tracklist)
	fmt.Printf("Total: %s\n", p.TotalDurationFormatted())
}

func printSongs(songs []models.Song) {
	for i, s := range songs {
		fmt.Printf("[%d] - %s\n", i, s)
	}
}

// sessionValid re-checks the session token before destructive operations.
func (m *menu) sessionValid() bool {
	if _, err := m.users.ValidateSession(m.session); err != nil {
		fmt.Println("Session expired. Please log in again.")
		return false
	}
	return true
}

// prompt reads one trimmed line. "quit" anywhere ends the session.
func (m *menu) prompt(label string) (string, error) {
	m.rl.SetPrompt(label)
	line, err := m.rl.Readline()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "quit") {
		return "", errQuit
	}
	return line, nil
}

func (m *menu) promptIndex(label string) (int, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Println("Enter a number.")
			continue
		}
		return value, nil
	}
}
