package main

import (
	"context"
	"crypto/rand"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.superseriousbusiness.org/httpsig"
	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/client"
	"github.com/sidereusnuntius/microblog/internal/config"
	db "github.com/sidereusnuntius/microblog/internal/db/impl"
	"github.com/sidereusnuntius/microblog/internal/initialization"
	"github.com/sidereusnuntius/microblog/internal/queue"
	service "github.com/sidereusnuntius/microblog/internal/service/impl"
	"github.com/sidereusnuntius/microblog/internal/state"
	"github.com/sidereusnuntius/microblog/internal/utils"
	"github.com/sidereusnuntius/microblog/internal/web"
	"github.com/sidereusnuntius/microblog/internal/wellknown"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to read configuration")
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		zero.Fatal().Err(err).Send()
	}
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		if err = initialization.SetupDB(d, config.MigrationsFolder, config.DbUrl); err != nil {
			zero.Fatal().Err(err).Send()
		}
	}

	if err = initialization.EnsureInstance(d, &config); err != nil {
		zero.Fatal().Err(err).Send()
	}

	q, err := initialization.InitQueue(&config)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(sessionKey(&config))

	dd := db.New(config, d)
	key, err := dd.GetUserPrivateKeyByURI(context.Background(), config.Url)
	if err != nil {
		zero.Fatal().Err(err).Msg("instance key not found")
	}

	httpClient := &http.Client{Timeout: config.DeliveryTimeout}
	client, err := client.New(dd, httpClient, key, []httpsig.Algorithm{httpsig.RSA_SHA256}, utils.KeyId(config.Url))
	if err != nil {
		zero.Fatal().Err(err).Send()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue := queue.New(ctx, dd, client, &config, q)

	state := state.State{
		DB:     dd,
		Config: config,
	}

	service, err := service.New(&state, queue)
	if err != nil {
		zero.Fatal().Err(err).Send()
	}

	handler := web.New(&config, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)
	wellknown.Mount(&state, router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	go func() {
		zero.Info().Uint16("port", config.Port).Msg("started server")
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zero.Fatal().Err(err).Send()
		}
	}()

	<-ctx.Done()
	zero.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		zero.Error().Err(err).Msg("server shutdown")
	}
	queue.Stop(shutdownCtx)
}

func sessionKey(cfg *config.Configuration) string {
	if cfg.SessionKey != "" {
		return cfg.SessionKey
	}
	// Sessions won't survive a restart without a configured key; acceptable for a
	// single user instance.
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
