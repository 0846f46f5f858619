package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

// Store wraps the clinic collections. It is constructed once and injected
// into every consumer; nothing here holds mutable in-memory state.
type Store struct {
	doctors      *mongo.Collection
	services     *mongo.Collection
	feedbacks    *mongo.Collection
	available    *mongo.Collection
	appointments *mongo.Collection
	users        *mongo.Collection
	payments     *mongo.Collection
}

func New(ctx context.Context, db *mongo.Database) (*Store, error) {
	s := &Store{
		doctors:      db.Collection("doctors"),
		services:     db.Collection("services"),
		feedbacks:    db.Collection("feedbacks"),
		available:    db.Collection("available-services"),
		appointments: db.Collection("appointments"),
		users:        db.Collection("users"),
		payments:     db.Collection("payments"),
	}

	// unique email index: a concurrent duplicate registration surfaces as
	// ErrDuplicate instead of a second document
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
