package main

import (
	"context"

	"github.com/chzyer/readline"

	"tunecrate/internal/app/admin"
	"tunecrate/internal/app/auth"
	"tunecrate/internal/app/catalog"
	"tunecrate/internal/app/playlists"
	"tunecrate/internal/app/users"
	"tunecrate/internal/logging"
	"tunecrate/internal/store"
)

func main() {
	cfg := loadConfig()

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	st := store.New()
	authSvc := auth.New(st, logger.Base())
	userSvc := users.New(st, authSvc, []byte(cfg.SessionSecret))
	catalogSvc := catalog.New(st.Catalog(), logger.Base())
	playlistSvc := playlists.New(logger.Base())
	adminSvc := admin.New(st, logger.Base())

	if cfg.SeedDemo {
		if err := seedDemoData(st, catalogSvc, playlistSvc); err != nil {
			logger.Fatal(err, "seed demo data")
		}
	}

	rl, err := readline.New("> ")
	if err != nil {
		logger.Fatal(err, "init readline")
	}
	defer rl.Close()

	m := &menu{
		rl:        rl,
		store:     st,
		users:     userSvc,
		catalogs:  catalogSvc,
		playlists: playlistSvc,
		admins:    adminSvc,
	}

	if err := m.Run(context.Background()); err != nil {
		logger.Error(err, "console session ended")
	}
}
