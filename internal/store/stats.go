package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

// Counts are cheap estimates — no filters, collection metadata only.
func (s *Store) Counts(ctx context.Context) (model.Stats, error) {
	var st model.Stats
	var err error
	if st.Doctors, err = s.doctors.EstimatedDocumentCount(ctx); err != nil {
		return st, err
	}
	if st.Users, err = s.users.EstimatedDocumentCount(ctx); err != nil {
		return st, err
	}
	st.Appointments, err = s.appointments.EstimatedDocumentCount(ctx)
	return st, err
}

// PatientsPerYear groups users by the year prefix of their date field and
// returns sparse ascending rows; gap-filling to a contiguous range happens
// in the handler.
func (s *Store) PatientsPerYear(ctx context.Context) ([]model.YearCount, error) {
	pipe := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": bson.M{"$regex": "^[0-9]{4}"}}}},
		{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"$toInt": bson.M{"$substrBytes": bson.A{"$date", 0, 4}}},
			"patients": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "year": "$_id", "patients": 1}}},
		{{Key: "$sort", Value: bson.M{"year": 1}}},
	}
	cur, err := s.users.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	var out []model.YearCount
	return out, cur.All(ctx, &out)
}
