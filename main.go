package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bookapi/config"
	"bookapi/handlers"
	"bookapi/store"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()
	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.MongoDB).
		Msg("starting book API")

	// Database
	ctx := context.Background()
	client, err := config.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect")
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDB)

	books := store.NewMongoBookStore(db)
	users, err := store.NewMongoUserStore(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("user store init")
	}

	// Router
	h := handlers.New(books, users, cfg.JWTSecret, cfg.TokenTTL)
	r := handlers.SetupRouter(h)

	log.Info().Str("addr", ":"+cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}
