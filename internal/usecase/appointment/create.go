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

type CreateAppointmentInput struct {
	StartsAt time.Time
	EndsAt   *time.Time

	ServiceID string

	UserID     *string
	ClientName string
	BarberID   *string

	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	settings SettingsProvider
	blocks   BlockChecker
	audit    *audit.Dispatcher
	loc      *time.Location

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	settings SettingsProvider,
	blocks BlockChecker,
	auditd *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
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

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Identificação do cliente
	// --------------------------------------------------
	clientName := strings.TrimSpace(in.ClientName)
	if in.UserID == nil && clientName == "" {
		return nil, domain.Validationf(
			"é necessário fornecer userId (cliente cadastrado) ou clientName (agendamento manual)",
		)
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, &domain.NotFoundError{Resource: "serviço", ID: in.ServiceID}
	}
	if !svc.Active {
		return nil, domain.Validationf(
			"o serviço %q não está mais disponível para agendamento", svc.Name,
		)
	}

	// --------------------------------------------------
	// Intervalo
	// --------------------------------------------------
	endsAt := time.Time{}
	if in.EndsAt != nil {
		endsAt = *in.EndsAt
	} else {
		endsAt, err = domain.ComputeEndTime(in.StartsAt, svc.DurationMin)
		if err != nil {
			return nil, domain.Validationf(
				"o serviço %q tem duração inválida (%d min)", svc.Name, svc.DurationMin,
			)
		}
	}

	candidate := domain.Interval{Start: in.StartsAt, End: endsAt}
	if !candidate.Valid() {
		return nil, domain.Validationf(
			"o horário de início (%s) deve ser anterior ao horário de término (%s)",
			in.StartsAt.In(uc.loc).Format("02/01/2006 15:04"),
			endsAt.In(uc.loc).Format("02/01/2006 15:04"),
		)
	}

	// --------------------------------------------------
	// Horário comercial + bloqueios
	// --------------------------------------------------
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
	// Cliente cadastrado
	// --------------------------------------------------
	if in.UserID != nil {
		user, err := uc.repo.GetUser(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, &domain.NotFoundError{Resource: "cliente", ID: *in.UserID}
		}
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.DefaultStatus()
	}
	if !status.Valid() {
		return nil, domain.Validationf("status inválido: %s", in.Status)
	}

	// --------------------------------------------------
	// Conflito de horário + criação (unidade atômica)
	// --------------------------------------------------
	ap := &models.Appointment{
		StartsAt:   candidate.Start,
		EndsAt:     candidate.End,
		Status:     string(status),
		UserID:     in.UserID,
		ClientName: clientName,
		BarberID:   in.BarberID,
		ServiceID:  svc.ID,
	}

	err = uc.repo.WithinScope(ctx, in.BarberID, func(tx domain.Repository) error {
		active, err := tx.FindActiveInScope(ctx, in.BarberID)
		if err != nil {
			return err
		}

		if winner := domain.ResolveConflict(
			candidate, "", domain.ContendersFrom(active),
		); winner != nil {
			return &domain.ConflictError{
				Winner:  winner,
				Message: createConflictMessage(winner, uc.loc),
			}
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		if _, ok := domain.AsConflict(err); ok {
			uc.audit.Dispatch(audit.Event{
				UserID: in.UserID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"starts_at": candidate.Start,
					"ends_at":   candidate.End,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	created, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return ap, nil
	}
	return created, nil
}

func createConflictMessage(w *domain.Contender, loc *time.Location) string {
	return fmt.Sprintf(
		"este horário já está reservado. %s tem um agendamento para %q no dia %s das %s às %s. Por favor, escolha outro horário disponível.",
		w.DisplayName,
		w.ServiceName,
		w.Interval.Start.In(loc).Format("02/01/2006"),
		w.Interval.Start.In(loc).Format("15:04"),
		w.Interval.End.In(loc).Format("15:04"),
	)
}
