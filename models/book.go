package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book represents a catalog entry and its lending state. Quantity counts
// copies currently on the shelf; BorrowedBy holds one entry per outstanding
// loan, so quantity + len(borrowedBy) stays constant across borrow/return.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Author        string             `bson:"author" json:"author"`
	YearPublished string             `bson:"yearPublished" json:"yearPublished"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Genre         []string           `bson:"genre" json:"genre"`
	BorrowedBy    []string           `bson:"borrowedBy" json:"borrowedBy"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookInput holds data for creating a book. Quantity and Genre are
// optional and default to 0 and ["N/A"].
type BookInput struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	YearPublished string   `json:"yearPublished"`
	Quantity      int      `json:"quantity"`
	Genre         []string `json:"genre"`
}

// BookUpdate holds data for updating a book. All fields are required;
// Quantity is a pointer so an explicit 0 can be told apart from a
// missing field.
type BookUpdate struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	YearPublished string   `json:"yearPublished"`
	Quantity      *int     `json:"quantity"`
	Genre         []string `json:"genre"`
}
