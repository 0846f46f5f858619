package handler_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tahsin974/LifeCare-House-Server/internal/handler"
	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
	"github.com/Tahsin974/LifeCare-House-Server/internal/store"
)

// compile-time check that the fake keeps up with the Store contract
var _ handler.Store = (*fakeStore)(nil)

// fakeStore is an in-memory stand-in for the mongo store.
type fakeStore struct {
	mu           sync.Mutex
	doctors      []model.Doctor
	services     []model.Service
	feedbacks    []model.Feedback
	available    []model.AvailableService
	users        []*model.User
	appointments []*model.Appointment
	payments     []model.Payment
	yearRows     []model.YearCount

	failMarkPaid error // forces the confirmation's second write to fail
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) ListDoctors(context.Context) ([]model.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Doctor(nil), f.doctors...), nil
}

func (f *fakeStore) DoctorByID(_ context.Context, id string) (*model.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.doctors {
		if f.doctors[i].ID.Hex() == id {
			d := f.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListServices(context.Context) ([]model.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Service(nil), f.services...), nil
}

func (f *fakeStore) ListFeedbacks(context.Context) ([]model.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Feedback(nil), f.feedbacks...), nil
}

func (f *fakeStore) ListAvailableServices(context.Context) ([]model.AvailableService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.AvailableService(nil), f.available...), nil
}

func (f *fakeStore) AppointmentDates(_ context.Context, email string) ([]model.AppointmentDate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AppointmentDate
	for _, a := range f.appointments {
		if a.Email == email {
			out = append(out, model.AppointmentDate{Date: a.Date})
		}
	}
	return out, nil
}

func (f *fakeStore) AppointmentsByEmail(_ context.Context, email, date string) ([]model.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Appointment
	for _, a := range f.appointments {
		if a.Email == email && (date == "" || a.Date == date) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateAppointment(_ context.Context, a *model.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = primitive.NewObjectID()
	f.appointments = append(f.appointments, a)
	return a.ID.Hex(), nil
}

func (f *fakeStore) MarkAppointmentPaid(_ context.Context, id, transactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMarkPaid != nil {
		return f.failMarkPaid
	}
	for _, a := range f.appointments {
		if a.ID.Hex() == id {
			a.Status = "paid"
			a.TransactionID = transactionID
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListUsers(context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeStore) CreateUser(_ context.Context, u *model.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.users {
		if e.Email == u.Email {
			return "", store.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return u.ID.Hex(), nil
}

func (f *fakeStore) MakeAdmin(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.Role = "admin"
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID.Hex() == id {
			email := u.Email
			f.users = append(f.users[:i], f.users[i+1:]...)
			kept := f.appointments[:0]
			for _, a := range f.appointments {
				if a.Email != email {
					kept = append(kept, a)
				}
			}
			f.appointments = kept
			return 1, nil
		}
	}
	return 0, store.ErrNotFound
}

func (f *fakeStore) CreatePayment(_ context.Context, p *model.Payment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.payments = append(f.payments, *p)
	return p.ID.Hex(), nil
}

func (f *fakeStore) PaymentsByEmail(_ context.Context, email string) ([]model.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Payment
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) Counts(context.Context) (model.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return model.Stats{
		Doctors:      int64(len(f.doctors)),
		Users:        int64(len(f.users)),
		Appointments: int64(len(f.appointments)),
	}, nil
}

func (f *fakeStore) PatientsPerYear(context.Context) ([]model.YearCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.YearCount(nil), f.yearRows...), nil
}

// helpers for seeding fixtures outside the HTTP surface

func (f *fakeStore) seedUser(email, role string) string {
	u := &model.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, u)
	return u.ID.Hex()
}

func (f *fakeStore) seedAppointment(email, date string) string {
	a := &model.Appointment{ID: primitive.NewObjectID(), Email: email, Date: date, Status: "pending"}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments = append(f.appointments, a)
	return a.ID.Hex()
}

var _ handler.Intents = (*fakeIntents)(nil)

// fakeIntents records requested amounts and hands back a canned secret.
type fakeIntents struct {
	mu           sync.Mutex
	amounts      []int64
	clientSecret string
	err          error
}

func (f *fakeIntents) CreateIntent(_ context.Context, amount int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.amounts = append(f.amounts, amount)
	return f.clientSecret, nil
}
