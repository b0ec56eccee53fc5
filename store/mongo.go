package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookapi/models"
)

// MongoBookStore implements BookStore on a MongoDB collection.
type MongoBookStore struct {
	col *mongo.Collection
}

func NewMongoBookStore(db *mongo.Database) *MongoBookStore {
	return &MongoBookStore{col: db.Collection("books")}
}

// objectID converts a request path id into an ObjectID. A malformed id
// can never match a stored record, so it is reported as a lookup miss.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (s *MongoBookStore) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.BorrowedBy == nil {
		book.BorrowedBy = []string{}
	}
	res, err := s.col.InsertOne(ctx, book)
	if err != nil {
		return nil, err
	}
	book.ID = res.InsertedID.(primitive.ObjectID)
	return book, nil
}

func (s *MongoBookStore) FindAll(ctx context.Context) ([]models.Book, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *MongoBookStore) SearchByTitle(ctx context.Context, query string) ([]models.Book, error) {
	// QuoteMeta keeps this a plain substring match even when the query
	// contains regex metacharacters.
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *MongoBookStore) Update(ctx context.Context, id string, upd models.BookUpdate) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":         upd.Title,
		"author":        upd.Author,
		"yearPublished": upd.YearPublished,
		"quantity":      *upd.Quantity,
		"genre":         upd.Genre,
		"updatedAt":     time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoBookStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoBookStore) Borrow(ctx context.Context, id, borrower string) (*models.Book, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	// The quantity guard in the filter makes the decrement conditional
	// and atomic: of two concurrent borrows racing for the last copy,
	// only one matches.
	res := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "quantity": bson.M{"$gt": 0}},
		bson.M{
			"$inc":  bson.M{"quantity": -1},
			"$push": bson.M{"borrowedBy": borrower},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var book models.Book
	if err := res.Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, s.missReason(ctx, oid)
		}
		return nil, err
	}
	return &book, nil
}

func (s *MongoBookStore) Return(ctx context.Context, id, borrower string) (*models.Book, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	// Pipeline update so the borrower-list rewrite and the increment land
	// in one atomic operation. Exactly one occurrence of the borrower is
	// removed: drop them all, then append count-1 back.
	occurrences := bson.D{{Key: "$size", Value: bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: "$borrowedBy"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$this", borrower}}}},
	}}}}}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.D{
		{Key: "quantity", Value: bson.D{{Key: "$add", Value: bson.A{"$quantity", 1}}}},
		{Key: "borrowedBy", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
			bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$borrowedBy"},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", borrower}}}},
			}}},
			bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: bson.D{{Key: "$range", Value: bson.A{1, occurrences}}}},
				{Key: "in", Value: bson.D{{Key: "$literal", Value: borrower}}},
			}}},
		}}}},
		{Key: "updatedAt", Value: "$$NOW"},
	}}}}
	res := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "borrowedBy": borrower},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var book models.Book
	if err := res.Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			if reason := s.missReason(ctx, oid); reason != ErrNoCopies {
				return nil, reason
			}
			return nil, ErrNotBorrowed
		}
		return nil, err
	}
	return &book, nil
}

// missReason tells a missing record apart from one that exists but did
// not match the conditional part of a borrow filter.
func (s *MongoBookStore) missReason(ctx context.Context, oid primitive.ObjectID) error {
	err := s.col.FindOne(ctx, bson.M{"_id": oid}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrNoCopies
}

// MongoUserStore implements UserStore on a MongoDB collection.
type MongoUserStore struct {
	col *mongo.Collection
}

// NewMongoUserStore ensures the unique email index so duplicate signups
// are rejected by the store itself, not by a racy pre-read.
func NewMongoUserStore(ctx context.Context, db *mongo.Database) (*MongoUserStore, error) {
	col := db.Collection("users")
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &MongoUserStore{col: col}, nil
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now().UTC()
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
