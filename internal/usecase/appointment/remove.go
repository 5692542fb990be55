package appointment

import (
	"context"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/audit"
	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

type RemoveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: auditd,
	}
}

// Execute deletes the appointment and returns its last-known state.
func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, &domain.NotFoundError{Resource: "agendamento", ID: id}
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
