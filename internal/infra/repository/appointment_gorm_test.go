package repository

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

/* ==================== SQLITE TEST DB ==================== */

func testDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedService(t *testing.T, db *gorm.DB) *models.Service {
	svc := &models.Service{
		ID:          "svc-1",
		Name:        "Corte",
		Price:       40,
		DurationMin: 30,
		Active:      true,
	}
	if err := db.Create(svc).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return svc
}

func seedAppointment(t *testing.T, db *gorm.DB, id, status string, barberID *string, createdAt time.Time) {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Appointment{
		ID:         id,
		StartsAt:   start,
		EndsAt:     start.Add(30 * time.Minute),
		Status:     status,
		ClientName: "Cliente " + id,
		BarberID:   barberID,
		ServiceID:  "svc-1",
		CreatedAt:  createdAt,
	}
	if err := db.Create(ap).Error; err != nil {
		t.Fatalf("failed to seed appointment %s: %v", id, err)
	}
}

/* ==================== CONFLICT SCOPE ==================== */

// Rows whose status released the slot must never come back from the
// conflict scan, even when they cover the exact same interval.
func TestFindActiveInScope_InactiveStatusesDoNotBlock(t *testing.T) {
	db := testDB(t)
	seedService(t, db)

	base := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	seedAppointment(t, db, "ap-canceled", "CANCELED", nil, base)
	seedAppointment(t, db, "ap-pending", "PENDING", nil, base.Add(1*time.Minute))
	seedAppointment(t, db, "ap-completed", "COMPLETED", nil, base.Add(2*time.Minute))
	seedAppointment(t, db, "ap-confirmed", "CONFIRMED", nil, base.Add(3*time.Minute))
	seedAppointment(t, db, "ap-noshow", "NO_SHOW", nil, base.Add(4*time.Minute))

	repo := NewAppointmentGormRepository(db)

	aps, err := repo.FindActiveInScope(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, aps, 2)

	// created_at ASC: the pending row was seeded first.
	assert.Equal(t, "ap-pending", aps[0].ID)
	assert.Equal(t, "ap-confirmed", aps[1].ID)
}

func TestFindActiveInScope_BarberFilter(t *testing.T) {
	db := testDB(t)
	seedService(t, db)

	barberA := "11111111-1111-1111-1111-111111111111"
	barberB := "22222222-2222-2222-2222-222222222222"

	base := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	seedAppointment(t, db, "ap-a", "CONFIRMED", &barberA, base)
	seedAppointment(t, db, "ap-b", "CONFIRMED", &barberB, base.Add(time.Minute))
	seedAppointment(t, db, "ap-any", "CONFIRMED", nil, base.Add(2*time.Minute))

	repo := NewAppointmentGormRepository(db)

	scoped, err := repo.FindActiveInScope(context.Background(), &barberA)
	assert.NoError(t, err)
	assert.Len(t, scoped, 1)
	assert.Equal(t, "ap-a", scoped[0].ID)

	all, err := repo.FindActiveInScope(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

/* ==================== ADVISORY LOCK KEYS ==================== */

// A create without barbeiro and a create with barbeiro check overlapping
// sets of rows, so they must contend on at least one common lock key.
// The global key comes first in every scope, which also fixes the
// acquisition order.
func TestScopeLockKeys_ScopesShareGlobalKey(t *testing.T) {
	barberA := "barber-a"

	global := scopeLockKeys(nil)
	scoped := scopeLockKeys(&barberA)

	assert.Len(t, global, 1)
	assert.Len(t, scoped, 2)

	assert.Equal(t, global[0], scoped[0])
	assert.NotEqual(t, scoped[0], scoped[1])
}

func TestScopeLockKeys_DistinctBarbersGetDistinctKeys(t *testing.T) {
	barberA := "barber-a"
	barberB := "barber-b"

	keysA := scopeLockKeys(&barberA)
	keysB := scopeLockKeys(&barberB)

	assert.Equal(t, keysA[0], keysB[0])
	assert.NotEqual(t, keysA[1], keysB[1])
}
