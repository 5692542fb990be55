package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/audit"
	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	StartsAt *time.Time
	EndsAt   *time.Time

	ServiceID *string

	// Setting UserID links a registered user and clears the manual
	// client name; setting ClientName does the reverse. Sending both is
	// rejected.
	UserID     *string
	ClientName *string

	Status *string
}

func (in UpdateAppointmentInput) touchesTime() bool {
	return in.StartsAt != nil || in.EndsAt != nil || in.ServiceID != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo     domain.Repository
	settings SettingsProvider
	blocks   BlockChecker
	audit    *audit.Dispatcher
	loc      *time.Location

	now func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	settings SettingsProvider,
	blocks BlockChecker,
	auditd *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		settings: settings,
		blocks:   blocks,
		audit:    auditd,
		loc:      loc,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	current, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, &domain.NotFoundError{Resource: "agendamento", ID: id}
	}

	if in.UserID != nil && in.ClientName != nil {
		return nil, domain.Validationf(
			"no update, forneça apenas userId ou clientName, não ambos",
		)
	}

	if in.Status != nil && !domain.Status(*in.Status).Valid() {
		return nil, domain.Validationf("status inválido: %s", *in.Status)
	}

	if in.UserID != nil {
		user, err := uc.repo.GetUser(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, &domain.NotFoundError{Resource: "cliente", ID: *in.UserID}
		}
	}

	// --------------------------------------------------
	// Patch simples: nada de tempo muda, sem revalidação
	// --------------------------------------------------
	if !in.touchesTime() {
		applyPatch(current, in)
		if err := uc.repo.SaveAppointment(ctx, current); err != nil {
			return nil, err
		}
		return uc.reload(ctx, current)
	}

	// --------------------------------------------------
	// Serviço efetivo
	// --------------------------------------------------
	svc := &current.Service
	if in.ServiceID != nil && *in.ServiceID != current.ServiceID {
		newSvc, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		if newSvc == nil {
			return nil, &domain.NotFoundError{Resource: "serviço", ID: *in.ServiceID}
		}
		if !newSvc.Active {
			return nil, domain.Validationf(
				"o serviço %q não está mais disponível para agendamento", newSvc.Name,
			)
		}
		svc = newSvc
	}

	// --------------------------------------------------
	// Intervalo efetivo
	// --------------------------------------------------
	startsAt := current.StartsAt
	if in.StartsAt != nil {
		startsAt = *in.StartsAt
	}

	endsAt := current.EndsAt
	switch {
	case in.EndsAt != nil:
		endsAt = *in.EndsAt
	case in.StartsAt != nil:
		endsAt, err = domain.ComputeEndTime(startsAt, svc.DurationMin)
		if err != nil {
			return nil, domain.Validationf(
				"o serviço %q tem duração inválida (%d min)", svc.Name, svc.DurationMin,
			)
		}
	}

	candidate := domain.Interval{Start: startsAt, End: endsAt}
	if !candidate.Valid() {
		return nil, domain.Validationf(
			"o horário de início (%s) deve ser anterior ao horário de término (%s)",
			startsAt.In(uc.loc).Format("02/01/2006 15:04"),
			endsAt.In(uc.loc).Format("02/01/2006 15:04"),
		)
	}

	if err := validateBusinessHours(
		ctx, uc.settings, candidate.Start, candidate.End, uc.loc, uc.now(),
	); err != nil {
		return nil, err
	}

	if err := validateNotBlocked(
		ctx, uc.blocks, candidate.Start, candidate.End, uc.loc,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Conflito + persistência (unidade atômica)
	// --------------------------------------------------
	err = uc.repo.WithinScope(ctx, current.BarberID, func(tx domain.Repository) error {
		active, err := tx.FindActiveInScope(ctx, current.BarberID)
		if err != nil {
			return err
		}

		if winner := domain.ResolveConflict(
			candidate, current.ID, domain.ContendersFrom(active),
		); winner != nil {
			return &domain.ConflictError{
				Winner:  winner,
				Message: updateConflictMessage(winner, uc.loc),
			}
		}

		current.StartsAt = candidate.Start
		current.EndsAt = candidate.End
		current.ServiceID = svc.ID
		current.Service = *svc
		applyPatch(current, in)

		return tx.SaveAppointment(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   current.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &current.ID,
	})

	return uc.reload(ctx, current)
}

func applyPatch(ap *models.Appointment, in UpdateAppointmentInput) {
	if in.Status != nil {
		ap.Status = *in.Status
	}
	if in.UserID != nil {
		ap.UserID = in.UserID
		ap.User = nil
		ap.ClientName = ""
	}
	if in.ClientName != nil {
		ap.ClientName = strings.TrimSpace(*in.ClientName)
		ap.UserID = nil
		ap.User = nil
	}
	if in.ServiceID != nil {
		ap.ServiceID = *in.ServiceID
	}
}

func (uc *UpdateAppointment) reload(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	fresh, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return ap, nil
	}
	return fresh, nil
}

func updateConflictMessage(w *domain.Contender, loc *time.Location) string {
	return fmt.Sprintf(
		"este horário não está disponível. %s já tem um agendamento de %s das %s - %s",
		w.DisplayName,
		w.ServiceName,
		w.Interval.Start.In(loc).Format("15:04"),
		w.Interval.End.In(loc).Format("15:04"),
	)
}
