package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

var byName = options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

func (s *Store) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	cur, err := s.doctors.Find(ctx, bson.M{}, byName)
	if err != nil {
		return nil, err
	}
	var out []model.Doctor
	return out, cur.All(ctx, &out)
}

func (s *Store) DoctorByID(ctx context.Context, id string) (*model.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	d := &model.Doctor{}
	err = s.doctors.FindOne(ctx, bson.M{"_id": oid}).Decode(d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) ListServices(ctx context.Context) ([]model.Service, error) {
	cur, err := s.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []model.Service
	return out, cur.All(ctx, &out)
}

func (s *Store) ListFeedbacks(ctx context.Context) ([]model.Feedback, error) {
	cur, err := s.feedbacks.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []model.Feedback
	return out, cur.All(ctx, &out)
}

func (s *Store) ListAvailableServices(ctx context.Context) ([]model.AvailableService, error) {
	cur, err := s.available.Find(ctx, bson.M{}, byName)
	if err != nil {
		return nil, err
	}
	var out []model.AvailableService
	return out, cur.All(ctx, &out)
}
