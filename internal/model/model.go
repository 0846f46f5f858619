package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"img,omitempty" json:"img,omitempty"`
}

type Feedback struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Message string             `bson:"message" json:"message"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
}

// AvailableService is a bookable catalog entry with its open slots.
type AvailableService struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots,omitempty" json:"slots,omitempty"`
	Price float64            `bson:"price" json:"price"`
}

// Appointment status moves "pending" -> "paid" only through the
// payment-confirmation step, which also sets TransactionID.
type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Date          string             `bson:"date" json:"date"`
	Service       string             `bson:"service,omitempty" json:"service,omitempty"`
	Slot          string             `bson:"slot,omitempty" json:"slot,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status        string             `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// AppointmentDate is the projected shape returned by the dates listing.
type AppointmentDate struct {
	Date string `bson:"date" json:"date"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Payment is append-only: written once per confirmed charge, never updated.
// AppointmentID is a reference; the appointment stays authoritative for status.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AppointmentID string             `bson:"appointmentId" json:"appointmentId"`
	Email         string             `bson:"email" json:"email"`
	Amount        int64              `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type Stats struct {
	Doctors      int64 `json:"doctors"`
	Users        int64 `json:"users"`
	Appointments int64 `json:"appointments"`
}

// YearCount is one row of the yearly patient report.
type YearCount struct {
	Year     int `bson:"year" json:"year"`
	Patients int `bson:"patients" json:"patients"`
}
