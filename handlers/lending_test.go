package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookapi/models"
)

// The full lending flow: one copy of Dune, two interested readers.
func TestBorrowReturnFlow(t *testing.T) {
	env := newTestEnv()
	book := env.createBook(t, models.BookInput{
		Title:         "Dune",
		Author:        "Frank Herbert",
		YearPublished: "1965",
		Quantity:      1,
	})
	id := book.ID.Hex()
	alice := env.token(t, models.RoleUser, "a@x.com")
	bob := env.token(t, models.RoleUser, "b@x.com")

	w := env.request(t, http.MethodPost, "/borrow/"+id, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "Dune")

	// Last copy is gone, bob is out of luck.
	w = env.request(t, http.MethodPost, "/borrow/"+id, bob, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/return/"+id, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "Dune")

	// Copy is back on the shelf.
	w = env.request(t, http.MethodPost, "/borrow/"+id, bob, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBorrowUnknownBook(t *testing.T) {
	env := newTestEnv()
	alice := env.token(t, models.RoleUser, "a@x.com")

	w := env.request(t, http.MethodPost, "/borrow/missing", alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBorrowRequiresAuth(t *testing.T) {
	env := newTestEnv()
	book := env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965", Quantity: 1})

	w := env.request(t, http.MethodPost, "/borrow/"+book.ID.Hex(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReturnNotBorrowed(t *testing.T) {
	env := newTestEnv()
	book := env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965", Quantity: 1})
	alice := env.token(t, models.RoleUser, "a@x.com")

	w := env.request(t, http.MethodPost, "/return/"+book.ID.Hex(), alice, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "not borrowed")
}

func TestReturnUnknownBook(t *testing.T) {
	env := newTestEnv()
	alice := env.token(t, models.RoleUser, "a@x.com")

	w := env.request(t, http.MethodPost, "/return/missing", alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
