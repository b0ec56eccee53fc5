// Command seed bootstraps the database with a starter catalog and the
// initial administrator account.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"bookapi/config"
	"bookapi/models"
	"bookapi/store"
)

var starterBooks = []models.Book{
	{Title: "1984", Author: "George Orwell", YearPublished: "1949", Quantity: 3, Genre: []string{"Dystopian"}},
	{Title: "Animal Farm", Author: "George Orwell", YearPublished: "1945", Quantity: 2, Genre: []string{"Satire"}},
	{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965", Quantity: 4, Genre: []string{"Science Fiction"}},
	{Title: "War and Peace", Author: "Leo Tolstoy", YearPublished: "1869", Quantity: 2, Genre: []string{"Historical Fiction"}},
	{Title: "The Art of War", Author: "Sun Tzu", YearPublished: "N/A", Quantity: 1, Genre: []string{"Philosophy", "Military"}},
	{Title: "Romeo and Juliet", Author: "William Shakespeare", YearPublished: "1597", Quantity: 2, Genre: []string{"Tragedy"}},
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := config.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect")
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDB)

	books := store.NewMongoBookStore(db)
	for i := range starterBooks {
		b := starterBooks[i]
		if _, err := books.Create(ctx, &b); err != nil {
			log.Fatal().Err(err).Str("title", b.Title).Msg("insert book")
		}
		log.Info().Str("title", b.Title).Msg("book inserted")
	}

	users, err := store.NewMongoUserStore(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("user store init")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	admin := &models.User{
		Username: getenv("ADMIN_USERNAME", "admin"),
		Email:    getenv("ADMIN_EMAIL", "admin@bookapi.local"),
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if _, err := users.Create(ctx, admin); err != nil {
		if err == store.ErrEmailInUse {
			log.Warn().Str("email", admin.Email).Msg("administrator already exists")
		} else {
			log.Fatal().Err(err).Msg("create administrator")
		}
	} else {
		log.Info().Str("email", admin.Email).Msg("administrator created")
	}

	log.Info().Msg("seed complete")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
