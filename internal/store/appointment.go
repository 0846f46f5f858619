package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

func (s *Store) AppointmentDates(ctx context.Context, email string) ([]model.AppointmentDate, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "date": 1})
	cur, err := s.appointments.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	var out []model.AppointmentDate
	return out, cur.All(ctx, &out)
}

// AppointmentsByEmail lists a patient's appointments, optionally narrowed to
// one date, sorted ascending by date.
func (s *Store) AppointmentsByEmail(ctx context.Context, email, date string) ([]model.Appointment, error) {
	q := bson.M{"email": email}
	if date != "" {
		q["date"] = date
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := s.appointments.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	var out []model.Appointment
	return out, cur.All(ctx, &out)
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) (string, error) {
	res, err := s.appointments.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// MarkAppointmentPaid is the second write of the payment confirmation. It is
// a single-document update; the payment insert that precedes it is a separate
// operation, so a failure here leaves a payment record for a still-pending
// appointment (accepted window, reconciled out of band).
func (s *Store) MarkAppointmentPaid(ctx context.Context, id, transactionID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := s.appointments.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": "paid", "transactionId": transactionID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
