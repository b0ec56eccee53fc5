package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookapi/models"
)

// MemoryBookStore is an in-memory BookStore used in tests. The mutex is
// held across each whole read-modify-write, which gives Borrow and
// Return the same atomicity the Mongo store gets from conditional
// single-document updates.
type MemoryBookStore struct {
	mu    sync.Mutex
	books map[string]*models.Book
}

func NewMemoryBookStore() *MemoryBookStore {
	return &MemoryBookStore{books: make(map[string]*models.Book)}
}

// snapshot copies a record so callers never alias the stored slices.
func snapshot(b *models.Book) models.Book {
	cp := *b
	cp.Genre = append([]string(nil), b.Genre...)
	cp.BorrowedBy = append([]string(nil), b.BorrowedBy...)
	return cp
}

func (s *MemoryBookStore) Create(_ context.Context, book *models.Book) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	book.ID = primitive.NewObjectID()
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.BorrowedBy == nil {
		book.BorrowedBy = []string{}
	}
	cp := snapshot(book)
	s.books[book.ID.Hex()] = &cp
	return book, nil
}

func (s *MemoryBookStore) FindAll(_ context.Context) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, snapshot(b))
	}
	return out, nil
}

func (s *MemoryBookStore) SearchByTitle(_ context.Context, query string) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	var out []models.Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			out = append(out, snapshot(b))
		}
	}
	return out, nil
}

func (s *MemoryBookStore) Update(_ context.Context, id string, upd models.BookUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return ErrNotFound
	}
	b.Title = upd.Title
	b.Author = upd.Author
	b.YearPublished = upd.YearPublished
	b.Quantity = *upd.Quantity
	b.Genre = upd.Genre
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryBookStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *MemoryBookStore) Borrow(_ context.Context, id, borrower string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	if b.Quantity <= 0 {
		return nil, ErrNoCopies
	}
	b.Quantity--
	b.BorrowedBy = append(b.BorrowedBy, borrower)
	b.UpdatedAt = time.Now().UTC()
	cp := snapshot(b)
	return &cp, nil
}

func (s *MemoryBookStore) Return(_ context.Context, id, borrower string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	idx := -1
	for i, email := range b.BorrowedBy {
		if email == borrower {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotBorrowed
	}
	// One loan returned at a time: drop a single occurrence even when
	// the borrower holds several copies.
	b.BorrowedBy = append(b.BorrowedBy[:idx], b.BorrowedBy[idx+1:]...)
	b.Quantity++
	b.UpdatedAt = time.Now().UTC()
	cp := snapshot(b)
	return &cp, nil
}

// MemoryUserStore is an in-memory UserStore used in tests.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return nil, ErrEmailInUse
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	cp := *user
	s.users[user.Email] = &cp
	return user, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}
