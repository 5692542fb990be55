package schedule

import (
	"context"
	"time"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// AppointmentFilter narrows list queries. Zero values mean "no filter".
type AppointmentFilter struct {
	From       *time.Time
	To         *time.Time
	UserID     string
	BarberID   string
	Status     string
	ClientName string
	Phone      string

	OrderDesc bool
	Page      int
	Limit     int
}

// Repository is the data-access collaborator of the scheduling service.
// It exposes retrieval and write primitives only; conflict logic never
// lives here. Lookups return (nil, nil) when the entity does not exist.
type Repository interface {
	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- User directory --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// FindActiveInScope returns PENDING/CONFIRMED appointments in the
	// conflict scope (one barber's agenda, or everything when barberID is
	// nil), ordered by created_at ascending.
	FindActiveInScope(
		ctx context.Context,
		barberID *string,
	) ([]models.Appointment, error)

	FindActiveInRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, int64, error)

	// WithinScope runs fn as a single atomic unit with respect to other
	// concurrent writers on the same scope, so a load-check-write
	// sequence cannot race another create or update.
	WithinScope(
		ctx context.Context,
		barberID *string,
		fn func(tx Repository) error,
	) error
}
