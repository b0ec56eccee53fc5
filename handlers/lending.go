package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapi/store"
)

// BorrowBook takes one copy of a book for the authenticated user. The
// borrower identity comes from the token claims, never from the body.
func (h *Handler) BorrowBook(c *gin.Context) {
	email := c.GetString("email")

	book, err := h.Books.Borrow(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		case store.ErrNoCopies:
			c.JSON(http.StatusBadRequest, gin.H{"error": "no copies of book available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": book.Title + " borrowed successfully"})
}

// ReturnBook gives back one copy previously borrowed by the
// authenticated user.
func (h *Handler) ReturnBook(c *gin.Context) {
	email := c.GetString("email")

	book, err := h.Books.Return(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		case store.ErrNotBorrowed:
			c.JSON(http.StatusBadRequest, gin.H{"error": "you have not borrowed this book"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": book.Title + " returned successfully"})
}
