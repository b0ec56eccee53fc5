package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapi/models"
	"bookapi/store"
)

// CreateBook adds a new book to the catalog.
func (h *Handler) CreateBook(c *gin.Context) {
	var input models.BookInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title == "" || input.Author == "" || input.YearPublished == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, author and yearPublished are required"})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
		return
	}

	genre := input.Genre
	if len(genre) == 0 {
		genre = []string{"N/A"}
	}

	book := &models.Book{
		Title:         input.Title,
		Author:        input.Author,
		YearPublished: input.YearPublished,
		Quantity:      input.Quantity,
		Genre:         genre,
	}

	book, err := h.Books.Create(c.Request.Context(), book)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, book)
}

// GetAllBooks returns the entire catalog.
func (h *Handler) GetAllBooks(c *gin.Context) {
	books, err := h.Books.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	c.JSON(http.StatusOK, books)
}

// SearchBooks returns books whose title contains the query as a
// case-insensitive substring.
func (h *Handler) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	books, err := h.Books.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(books) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no books found with that title"})
		return
	}

	c.JSON(http.StatusOK, books)
}

// UpdateBook replaces the editable fields of a book. Partial updates
// are rejected: every field must be present.
func (h *Handler) UpdateBook(c *gin.Context) {
	var input models.BookUpdate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title == "" || input.Author == "" || input.YearPublished == "" ||
		input.Quantity == nil || len(input.Genre) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields must be filled"})
		return
	}
	if *input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
		return
	}

	err := h.Books.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "book updated successfully"})
}

// DeleteBook removes a book from the catalog.
func (h *Handler) DeleteBook(c *gin.Context) {
	err := h.Books.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "book deleted successfully"})
}
