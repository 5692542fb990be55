package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// User directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&ap, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

// --------------------------------------------------
// Conflict scope
// --------------------------------------------------

func (r *AppointmentGormRepository) FindActiveInScope(
	ctx context.Context,
	barberID *string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("status IN ?", domain.ActiveStatuses)

	// SQLite (usado nos testes) não suporta FOR UPDATE.
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if barberID != nil {
		q = q.Where("barber_id = ?", *barberID)
	}

	var aps []models.Appointment
	if err := q.
		Preload("User").
		Preload("Service").
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) FindActiveInRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status IN ? AND starts_at >= ? AND starts_at < ?",
			domain.ActiveStatuses, from, to,
		).
		Order("starts_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Read operations
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.From != nil {
		q = q.Where("appointments.starts_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("appointments.starts_at < ?", *f.To)
	}
	if f.UserID != "" {
		q = q.Where("appointments.user_id = ?", f.UserID)
	}
	if f.BarberID != "" {
		q = q.Where("appointments.barber_id = ?", f.BarberID)
	}
	if f.Status != "" {
		q = q.Where("appointments.status = ?", f.Status)
	}

	if f.ClientName != "" || f.Phone != "" {
		q = q.Joins("LEFT JOIN users ON users.id = appointments.user_id")

		like := "%" + f.ClientName + "%"
		switch {
		case f.ClientName != "" && f.Phone != "":
			q = q.Where(
				"LOWER(appointments.client_name) LIKE LOWER(?) OR LOWER(users.name) LIKE LOWER(?) OR users.phone LIKE ?",
				like, like, "%"+f.Phone+"%",
			)
		case f.ClientName != "":
			q = q.Where(
				"LOWER(appointments.client_name) LIKE LOWER(?) OR LOWER(users.name) LIKE LOWER(?)",
				like, like,
			)
		default:
			q = q.Where("users.phone LIKE ?", "%"+f.Phone+"%")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "starts_at ASC"
	if f.OrderDesc {
		order = "starts_at DESC"
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	var aps []models.Appointment
	if err := q.
		Preload("User").
		Preload("Service").
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

// --------------------------------------------------
// Atomicity
// --------------------------------------------------

// WithinScope wraps fn in a transaction that first takes advisory locks
// keyed on the conflict scope. Every writer takes the global lock, and a
// writer with barbeiro also takes the per-barber lock, always in that
// order. A global-scope create and a per-barber create therefore always
// contend on the global key and serialize, so both can never observe "no
// conflict" and both insert.
func (r *AppointmentGormRepository) WithinScope(
	ctx context.Context,
	barberID *string,
	fn func(tx domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range scopeLockKeys(barberID) {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(?)", key,
			).Error; err != nil {
				return err
			}
		}

		return fn(&AppointmentGormRepository{db: tx})
	})
}

// scopeLockKeys returns the advisory lock keys for a conflict scope,
// global key first. The fixed order keeps concurrent writers deadlock-free.
func scopeLockKeys(barberID *string) []int64 {
	keys := []int64{lockKey("global")}
	if barberID != nil {
		keys = append(keys, lockKey(*barberID))
	}
	return keys
}

func lockKey(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
