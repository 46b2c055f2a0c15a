package main

import (
	"context"

	"github.com/taxdesk/practice-api/internal/api"
	"github.com/taxdesk/practice-api/internal/infrastructure/db/memory"
	"github.com/taxdesk/practice-api/internal/infrastructure/files"
	"github.com/taxdesk/practice-api/internal/pkg/config"
	"github.com/taxdesk/practice-api/internal/vault"
	"github.com/taxdesk/practice-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	v, err := vault.New(cfg.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("credential vault init failed")
	}

	uploads, err := files.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	store := memory.NewStore()
	admin, err := store.SeedAdmin(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	if admin != nil {
		log.Info().Str("username", admin.Username).Msg("default admin user created")
	}

	e := api.NewRouter(store, v, uploads, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting practice API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
