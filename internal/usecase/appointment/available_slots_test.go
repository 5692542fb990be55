package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

func newSlotsUC(repo *MockRepository, st *MockSettingsProvider, bl *MockBlockChecker) *GetAvailableSlots {
	uc := NewGetAvailableSlots(repo, st, bl, time.UTC)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestGetAvailableSlots_EmptyAgenda(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockSettingsProvider)
	bl := new(MockBlockChecker)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	cfg := testSettings()
	cfg.OpenTime = "08:00"
	cfg.CloseTime = "10:00"
	cfg.SlotIntervalMin = 30
	cfg.MinAdvanceHours = 0

	st.On("Get", mock.Anything).Return(cfg, nil)
	repo.On("GetService", mock.Anything, "svc-1").Return(testService(), nil)
	repo.On("FindActiveInRange", mock.Anything, mock.Anything, mock.Anything).Return([]models.Appointment{}, nil)
	bl.On("IsBlocked", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	uc := newSlotsUC(repo, st, bl)

	result, err := uc.Execute(context.Background(), date, "svc-1")

	assert.NoError(t, err)
	// testNow é 08:00; serviço de 30 min a cada 30 min até as 10:00, só
	// entram os inícios estritamente futuros: 08:30, 09:00 e 09:30
	assert.Equal(t, []string{
		"2026-09-10T08:30:00Z",
		"2026-09-10T09:00:00Z",
		"2026-09-10T09:30:00Z",
	}, result.Slots)
	assert.Equal(t, "08:00", result.BusinessHours.OpenTime)
}

func TestGetAvailableSlots_SkipsBookedAndBlocked(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockSettingsProvider)
	bl := new(MockBlockChecker)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	cfg := testSettings()
	cfg.OpenTime = "08:00"
	cfg.CloseTime = "10:00"
	cfg.SlotIntervalMin = 30
	cfg.MinAdvanceHours = 0

	booked := models.Appointment{
		StartsAt: date.Add(9 * time.Hour),
		EndsAt:   date.Add(9*time.Hour + 30*time.Minute),
		Status:   "CONFIRMED",
	}

	st.On("Get", mock.Anything).Return(cfg, nil)
	repo.On("GetService", mock.Anything, "svc-1").Return(testService(), nil)
	repo.On("FindActiveInRange", mock.Anything, mock.Anything, mock.Anything).Return([]models.Appointment{booked}, nil)

	blockedStart := date.Add(9*time.Hour + 30*time.Minute)
	bl.On("IsBlocked", mock.Anything, blockedStart, blockedStart.Add(30*time.Minute)).Return(true, nil)
	bl.On("IsBlocked", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	uc := newSlotsUC(repo, st, bl)

	result, err := uc.Execute(context.Background(), date, "svc-1")

	assert.NoError(t, err)
	// 09:00 ocupado, 09:30 bloqueado
	assert.Equal(t, []string{"2026-09-10T08:30:00Z"}, result.Slots)
}

func TestGetAvailableSlots_NonWorkingDay(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockSettingsProvider)

	st.On("Get", mock.Anything).Return(testSettings(), nil)
	repo.On("GetService", mock.Anything, "svc-1").Return(testService(), nil)

	uc := newSlotsUC(repo, st, new(MockBlockChecker))

	// domingo
	date := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), date, "svc-1")

	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
}

func TestGetAvailableSlots_ServiceNotFound(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockSettingsProvider)

	st.On("Get", mock.Anything).Return(testSettings(), nil)
	repo.On("GetService", mock.Anything, "ghost").Return(nil, nil)

	uc := newSlotsUC(repo, st, new(MockBlockChecker))

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), date, "ghost")

	_, ok := domain.AsNotFound(err)
	assert.True(t, ok)
}
