package appointment

import (
	"context"
	"time"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/settings"
)

// ======================================================
// AVAILABLE SLOTS
// ======================================================

type AvailableSlotsResult struct {
	Slots         []string      `json:"slots"`
	BusinessHours BusinessHours `json:"business_hours"`
}

type BusinessHours struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type GetAvailableSlots struct {
	repo     domain.Repository
	settings SettingsProvider
	blocks   BlockChecker
	loc      *time.Location

	now func() time.Time
}

func NewGetAvailableSlots(
	repo domain.Repository,
	provider SettingsProvider,
	blocks BlockChecker,
	loc *time.Location,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:     repo,
		settings: provider,
		blocks:   blocks,
		loc:      loc,
		now:      time.Now,
	}
}

// Execute walks the business day of date in slot-interval steps and
// returns the starts that would accept the given service: in the
// future, respecting the minimum advance, free of conflicts and blocks.
// date must be midnight in the business timezone.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
	serviceID string,
) (*AvailableSlotsResult, error) {

	st, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, &domain.NotFoundError{Resource: "serviço", ID: serviceID}
	}
	if !svc.Active {
		return nil, domain.Validationf(
			"o serviço %q não está mais disponível para agendamento", svc.Name,
		)
	}

	day := int(date.In(uc.loc).Weekday())
	if !containsDay(st.WorkingDays, day) {
		return nil, domain.Validationf(
			"%s não é um dia útil", settings.DayName(day),
		)
	}

	openMin, err := settings.TimeToMinutes(st.OpenTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := settings.TimeToMinutes(st.CloseTime)
	if err != nil {
		return nil, err
	}

	dayStart := date.In(uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.FindActiveInRange(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, err
	}

	now := uc.now()
	minAdvance := time.Duration(st.MinAdvanceHours) * time.Hour

	slots := []string{}
	for m := openMin; m+svc.DurationMin <= closeMin; m += st.SlotIntervalMin {
		slotStart := dayStart.Add(time.Duration(m) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(svc.DurationMin) * time.Minute)
		slot := domain.Interval{Start: slotStart, End: slotEnd}

		if !slotStart.After(now) {
			continue
		}
		if slotStart.Sub(now) < minAdvance {
			continue
		}

		conflict := false
		for _, ap := range existing {
			if slot.Overlaps(domain.Interval{Start: ap.StartsAt, End: ap.EndsAt}) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		blocked, err := uc.blocks.IsBlocked(ctx, slotStart.UTC(), slotEnd.UTC())
		if err != nil {
			return nil, err
		}
		if blocked {
			continue
		}

		slots = append(slots, slotStart.UTC().Format(time.RFC3339))
	}

	return &AvailableSlotsResult{
		Slots: slots,
		BusinessHours: BusinessHours{
			OpenTime:  st.OpenTime,
			CloseTime: st.CloseTime,
		},
	}, nil
}
