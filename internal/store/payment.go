package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

func (s *Store) CreatePayment(ctx context.Context, p *model.Payment) (string, error) {
	res, err := s.payments.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *Store) PaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.payments.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	var out []model.Payment
	return out, cur.All(ctx, &out)
}
