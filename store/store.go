package store

import (
	"context"
	"errors"

	"bookapi/models"
)

// Sentinel errors returned by store implementations. Handlers map these
// to HTTP status codes; anything else is treated as an internal error.
var (
	ErrNotFound    = errors.New("not found")
	ErrEmailInUse  = errors.New("email already in use")
	ErrNoCopies    = errors.New("no copies available")
	ErrNotBorrowed = errors.New("book not borrowed by this user")
)

// BookStore persists catalog records. Borrow and Return must be atomic
// with respect to the read-modify-write on a single record: two
// concurrent Borrow calls against a book with one copy left must not
// both succeed.
type BookStore interface {
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	// SearchByTitle returns every book whose title contains the query as
	// a case-insensitive substring.
	SearchByTitle(ctx context.Context, query string) ([]models.Book, error)
	// Update replaces title, author, yearPublished, quantity and genre.
	Update(ctx context.Context, id string, upd models.BookUpdate) error
	Delete(ctx context.Context, id string) error
	// Borrow decrements quantity by one and records the borrower.
	// Returns ErrNotFound for an unknown id and ErrNoCopies when
	// quantity is already zero.
	Borrow(ctx context.Context, id, borrower string) (*models.Book, error)
	// Return removes one occurrence of the borrower and increments
	// quantity by one. Returns ErrNotBorrowed when the borrower holds
	// no copy of the book.
	Return(ctx context.Context, id, borrower string) (*models.Book, error)
}

// UserStore persists account records.
type UserStore interface {
	// Create inserts a new user. Returns ErrEmailInUse when the email is
	// already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
