package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	adapthttp "orbit/internal/adapter/http"
	"orbit/internal/adapter/meili"
	"orbit/internal/adapter/postgres"
	"orbit/internal/app"
	"orbit/internal/config"
	"orbit/internal/logger"
)

const sweepInterval = time.Hour

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("info", "text").Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := postgres.Open(cfg.Database.URL)
	if err != nil {
		log.Error("db open", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	index, err := meili.New(cfg.Meili.URL, cfg.Meili.Key)
	if err != nil {
		log.Error("search index", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	emoteRepo := postgres.NewEmoteRepo(db)
	setRepo := postgres.NewSetRepo(db)
	colorRepo := postgres.NewColorRepo(db)

	authSvc := app.NewAuthService(userRepo, sessionRepo)
	userSvc := app.NewUserService(userRepo, emoteRepo, setRepo)
	emoteSvc := app.NewEmoteService(emoteRepo, index)
	setSvc := app.NewSetService(setRepo)
	colorSvc := app.NewColorService(colorRepo)

	var oauth *adapthttp.OAuth
	if cfg.Twitch.ClientID != "" {
		oauth, err = adapthttp.NewOAuth(context.Background(),
			cfg.Twitch.ClientID, cfg.Twitch.ClientSecret, cfg.Twitch.RedirectURL)
		if err != nil {
			log.Error("twitch oidc", "error", err)
			os.Exit(1)
		}
	} else {
		log.Warn("twitch client id not set, login disabled")
	}

	go sweepSessions(log, authSvc)

	h := adapthttp.New(log, authSvc, userSvc, emoteSvc, setSvc, colorSvc, oauth).Handler()
	log.Info("listening", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("serve", "error", err)
		os.Exit(1)
	}
}

// sweepSessions periodically deletes expired sessions so the token resolver
// never has to check expiry itself.
func sweepSessions(log *slog.Logger, auth *app.AuthService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		if err := auth.SweepExpired(context.Background()); err != nil {
			log.Error("session sweep", "error", err)
		}
	}
}
