package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookapi/models"
)

func TestCreateBookDefaults(t *testing.T) {
	env := newTestEnv()

	book := env.createBook(t, models.BookInput{
		Title:         "Dune",
		Author:        "Frank Herbert",
		YearPublished: "1965",
	})

	assert.Equal(t, 0, book.Quantity)
	assert.Equal(t, []string{"N/A"}, book.Genre)
	assert.Empty(t, book.BorrowedBy)
}

func TestCreateBookMissingFields(t *testing.T) {
	env := newTestEnv()
	admin := env.token(t, models.RoleAdmin, "admin@x.com")

	w := env.request(t, http.MethodPost, "/books", admin, models.BookInput{Title: "Dune"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookRequiresAdmin(t *testing.T) {
	env := newTestEnv()
	input := models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965"}

	w := env.request(t, http.MethodPost, "/books", "", input)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/books", env.token(t, models.RoleUser, "a@x.com"), input)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetAllBooks(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodGet, "/all-books", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965"})
	env.createBook(t, models.BookInput{Title: "1984", Author: "George Orwell", YearPublished: "1949"})

	w = env.request(t, http.MethodGet, "/all-books", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var books []models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	assert.Len(t, books, 2)
}

func TestSearchBooks(t *testing.T) {
	env := newTestEnv()
	env.createBook(t, models.BookInput{Title: "War and Peace", Author: "Leo Tolstoy", YearPublished: "1869"})
	env.createBook(t, models.BookInput{Title: "Star Wars", Author: "George Lucas", YearPublished: "1976"})
	env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965"})

	// Case-insensitive substring match.
	w := env.request(t, http.MethodGet, "/search?title=war", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var books []models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	assert.Len(t, books, 2)

	w = env.request(t, http.MethodGet, "/search?title=zzz", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodGet, "/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBook(t *testing.T) {
	env := newTestEnv()
	admin := env.token(t, models.RoleAdmin, "admin@x.com")
	book := env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965", Quantity: 1})

	qty := 3
	w := env.request(t, http.MethodPut, "/update-book/"+book.ID.Hex(), admin, models.BookUpdate{
		Title:         "Dune Messiah",
		Author:        "Frank Herbert",
		YearPublished: "1969",
		Quantity:      &qty,
		Genre:         []string{"Science Fiction"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateBookRejectsPartial(t *testing.T) {
	env := newTestEnv()
	admin := env.token(t, models.RoleAdmin, "admin@x.com")
	book := env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965"})

	// Quantity and genre missing: all-or-nothing replace is enforced.
	w := env.request(t, http.MethodPut, "/update-book/"+book.ID.Hex(), admin, map[string]any{
		"title":         "Dune Messiah",
		"author":        "Frank Herbert",
		"yearPublished": "1969",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookNotFound(t *testing.T) {
	env := newTestEnv()
	admin := env.token(t, models.RoleAdmin, "admin@x.com")

	qty := 1
	w := env.request(t, http.MethodPut, "/update-book/missing", admin, models.BookUpdate{
		Title:         "Dune",
		Author:        "Frank Herbert",
		YearPublished: "1965",
		Quantity:      &qty,
		Genre:         []string{"N/A"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBook(t *testing.T) {
	env := newTestEnv()
	admin := env.token(t, models.RoleAdmin, "admin@x.com")
	book := env.createBook(t, models.BookInput{Title: "Dune", Author: "Frank Herbert", YearPublished: "1965"})

	w := env.request(t, http.MethodDelete, "/delete-book/"+book.ID.Hex(), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodDelete, "/delete-book/"+book.ID.Hex(), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
