package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// ======================================================
// LIST / GET
// ======================================================

type ListAppointmentsInput struct {
	// Date restricts results to one business day (midnight in the
	// business timezone).
	Date *time.Time

	UserID   string
	BarberID string
	Status   string

	OrderDesc bool
	Page      int
	Limit     int
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, int64, error) {

	if in.Status != "" && !domain.Status(in.Status).Valid() {
		return nil, 0, domain.Validationf(
			"status inválido. Valores permitidos: %s",
			strings.Join([]string{
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
				string(domain.StatusCanceled),
				string(domain.StatusCompleted),
				string(domain.StatusNoShow),
			}, ", "),
		)
	}

	filter := domain.AppointmentFilter{
		UserID:    in.UserID,
		BarberID:  in.BarberID,
		Status:    in.Status,
		OrderDesc: in.OrderDesc,
		Page:      in.Page,
		Limit:     in.Limit,
	}

	if in.Date != nil {
		from := *in.Date
		to := from.Add(24 * time.Hour)
		filter.From = &from
		filter.To = &to
	}

	return uc.repo.ListAppointments(ctx, filter)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
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
	return ap, nil
}

// ======================================================
// CLIENT HISTORY
// ======================================================

type ClientHistory struct {
	repo domain.Repository
}

func NewClientHistory(repo domain.Repository) *ClientHistory {
	return &ClientHistory{repo: repo}
}

func (uc *ClientHistory) Execute(
	ctx context.Context,
	clientName string,
	phone string,
	page int,
	limit int,
) ([]models.Appointment, int64, error) {

	clientName = strings.TrimSpace(clientName)
	phone = strings.TrimSpace(phone)

	if clientName == "" && phone == "" {
		return nil, 0, domain.Validationf(
			"é necessário fornecer pelo menos o nome ou telefone do cliente para buscar o histórico",
		)
	}

	return uc.repo.ListAppointments(ctx, domain.AppointmentFilter{
		ClientName: clientName,
		Phone:      phone,
		OrderDesc:  true,
		Page:       page,
		Limit:      limit,
	})
}
