package handlers

import (
	"time"

	"bookapi/store"
)

// Handler carries the stores and token settings the route handlers
// need. Stores are interfaces so tests can swap in memory doubles.
type Handler struct {
	Books     store.BookStore
	Users     store.UserStore
	JWTSecret []byte
	TokenTTL  time.Duration
}

func New(books store.BookStore, users store.UserStore, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		Books:     books,
		Users:     users,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}
