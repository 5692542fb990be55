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

func TestListAppointments_InvalidStatus(t *testing.T) {
	uc := NewListAppointments(new(MockRepository))

	_, _, err := uc.Execute(context.Background(), ListAppointmentsInput{
		Status: "WAITING",
	})

	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
}

func TestListAppointments_DateWindow(t *testing.T) {
	repo := new(MockRepository)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	repo.On("ListAppointments", mock.Anything, mock.MatchedBy(func(f domain.AppointmentFilter) bool {
		return f.From != nil && f.From.Equal(date) &&
			f.To != nil && f.To.Equal(date.Add(24*time.Hour))
	})).Return([]models.Appointment{}, int64(0), nil)

	uc := NewListAppointments(repo)

	_, _, err := uc.Execute(context.Background(), ListAppointmentsInput{
		Date:  &date,
		Page:  1,
		Limit: 20,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestClientHistory_RequiresNameOrPhone(t *testing.T) {
	uc := NewClientHistory(new(MockRepository))

	_, _, err := uc.Execute(context.Background(), "", "", 1, 20)

	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
}

func TestClientHistory_SearchesByName(t *testing.T) {
	repo := new(MockRepository)

	repo.On("ListAppointments", mock.Anything, mock.MatchedBy(func(f domain.AppointmentFilter) bool {
		return f.ClientName == "Maria" && f.OrderDesc
	})).Return([]models.Appointment{{ID: "ap-1"}}, int64(1), nil)

	uc := NewClientHistory(repo)

	data, total, err := uc.Execute(context.Background(), "Maria", "", 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, data, 1)
}

func TestGetAppointment_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "ghost").Return(nil, nil)

	uc := NewGetAppointment(repo)

	_, err := uc.Execute(context.Background(), "ghost")

	_, ok := domain.AsNotFound(err)
	assert.True(t, ok)
}

func TestRemoveAppointment(t *testing.T) {
	repo := new(MockRepository)

	ap := existingAppointment()
	repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("DeleteAppointment", mock.Anything, "ap-1").Return(nil)

	uc := NewRemoveAppointment(repo, nil)

	removed, err := uc.Execute(context.Background(), "ap-1")

	assert.NoError(t, err)
	assert.Equal(t, "ap-1", removed.ID)
	repo.AssertExpectations(t)
}

func TestRemoveAppointment_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "ghost").Return(nil, nil)

	uc := NewRemoveAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), "ghost")

	_, ok := domain.AsNotFound(err)
	assert.True(t, ok)
	repo.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
}
