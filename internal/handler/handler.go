package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/middleware"
	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
	"github.com/Tahsin974/LifeCare-House-Server/internal/payment"
	"github.com/Tahsin974/LifeCare-House-Server/internal/store"
)

// Store is what the handlers need from the document store. The concrete
// mongo store satisfies it; tests substitute an in-memory fake.
type Store interface {
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	DoctorByID(ctx context.Context, id string) (*model.Doctor, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListFeedbacks(ctx context.Context) ([]model.Feedback, error)
	ListAvailableServices(ctx context.Context) ([]model.AvailableService, error)

	AppointmentDates(ctx context.Context, email string) ([]model.AppointmentDate, error)
	AppointmentsByEmail(ctx context.Context, email, date string) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, a *model.Appointment) (string, error)
	MarkAppointmentPaid(ctx context.Context, id, transactionID string) error

	UserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u *model.User) (string, error)
	MakeAdmin(ctx context.Context, id string) (int64, error)
	DeleteUser(ctx context.Context, id string) (int64, error)

	CreatePayment(ctx context.Context, p *model.Payment) (string, error)
	PaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error)

	Counts(ctx context.Context) (model.Stats, error)
	PatientsPerYear(ctx context.Context) ([]model.YearCount, error)
}

// Intents is the payment-authority dependency.
type Intents interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

var (
	_ Store   = (*store.Store)(nil)
	_ Intents = (*payment.Client)(nil)
)

type Handler struct {
	store        Store
	intents      Intents
	secret       string
	ttl          time.Duration
	secureCookie bool
}

func New(st Store, intents Intents, secret string, ttl time.Duration, secureCookie bool) *Handler {
	return &Handler{store: st, intents: intents, secret: secret, ttl: ttl, secureCookie: secureCookie}
}

// Routes wires every endpoint behind its gates. Ordering matters only inside
// a group: the admin gate always sits behind the session gate.
func (h *Handler) Routes(r *gin.Engine, rl *middleware.RateLimiter) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome To LifeCare House Server")
	})

	r.POST("/jwt", middleware.RateLimit(rl), h.Login)
	r.POST("/logout", h.Logout)

	r.GET("/services", h.ListServices)
	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctors/:id", h.GetDoctor)
	r.GET("/feedbacks", h.ListFeedbacks)
	r.GET("/available-services", h.ListAvailableServices)
	r.POST("/all-users", middleware.RateLimit(rl), h.Register)

	authed := r.Group("", middleware.RequireSession(h.secret))
	{
		authed.GET("/appointment-dates", h.AppointmentDates)
		authed.GET("/my-appointments", h.MyAppointments)
		authed.POST("/my-appointment", h.BookAppointment)
		authed.GET("/user/admin/:email", h.IsAdmin)

		authed.POST("/create-payment-intent", h.CreatePaymentIntent)
		authed.POST("/payments", h.ConfirmPayment)
		authed.GET("/payments", h.PaymentHistory)
	}

	admin := authed.Group("", middleware.AdminOnly(h.store))
	{
		admin.GET("/all-users", h.ListUsers)
		admin.PATCH("/make-admin/:id", h.MakeAdmin)
		admin.DELETE("/delete-user/:id", h.DeleteUser)
		admin.GET("/admin-stats", h.AdminStats)
		admin.GET("/patients-per-year", h.PatientsPerYear)
	}
}

// fail maps any downstream error to a 500; nothing is retried.
func fail(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}

// sameSubject enforces self-scope: a caller-supplied target email must match
// the authenticated identity. Runs before any store access.
func sameSubject(c *gin.Context, email string) bool {
	claims, ok := middleware.Identity(c)
	if !ok || email != claims.Email {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return false
	}
	return true
}
