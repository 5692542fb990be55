package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/settings"
)

// ======================================================
// BUSINESS HOURS
// ======================================================

// validateBusinessHours checks that [start, end) lies on a working day
// inside the configured open/close window, and that the start respects
// the minimum and maximum booking advance. All interpretation happens in
// the business timezone; the instants themselves stay UTC.
func validateBusinessHours(
	ctx context.Context,
	provider SettingsProvider,
	start time.Time,
	end time.Time,
	loc *time.Location,
	now time.Time,
) error {

	st, err := provider.Get(ctx)
	if err != nil {
		return err
	}

	local := start.In(loc)
	day := int(local.Weekday())

	if !containsDay(st.WorkingDays, day) {
		names := make([]string, 0, len(st.WorkingDays))
		for _, d := range st.WorkingDays {
			names = append(names, settings.DayName(d))
		}
		return domain.Validationf(
			"não atendemos em %s. Dias de atendimento: %s.",
			settings.DayName(day),
			strings.Join(names, ", "),
		)
	}

	openMin, err := settings.TimeToMinutes(st.OpenTime)
	if err != nil {
		return err
	}
	closeMin, err := settings.TimeToMinutes(st.CloseTime)
	if err != nil {
		return err
	}

	localEnd := end.In(loc)
	startMin := local.Hour()*60 + local.Minute()
	endMin := localEnd.Hour()*60 + localEnd.Minute()

	sameDay := local.Year() == localEnd.Year() &&
		local.YearDay() == localEnd.YearDay()

	if !sameDay || startMin < openMin || endMin > closeMin {
		return domain.Validationf(
			"o horário selecionado (%s - %s do dia %s) está fora do nosso horário de atendimento. Funcionamos das %s às %s.",
			local.Format("15:04"),
			localEnd.Format("15:04"),
			local.Format("02/01/2006"),
			st.OpenTime,
			st.CloseTime,
		)
	}

	diff := start.Sub(now)

	minAdvance := time.Duration(st.MinAdvanceHours) * time.Hour
	if diff < minAdvance {
		label := "horas"
		if st.MinAdvanceHours == 1 {
			label = "hora"
		}
		return domain.Validationf(
			"agendamentos devem ser feitos com pelo menos %d %s de antecedência.",
			st.MinAdvanceHours, label,
		)
	}

	maxAdvance := time.Duration(st.MaxAdvanceDays) * 24 * time.Hour
	if diff > maxAdvance {
		label := "dias"
		if st.MaxAdvanceDays == 1 {
			label = "dia"
		}
		return domain.Validationf(
			"não é possível agendar com mais de %d %s de antecedência.",
			st.MaxAdvanceDays, label,
		)
	}

	return nil
}

// ======================================================
// TIME BLOCKS
// ======================================================

var blockTypeLabels = map[string]string{
	models.BlockLunch:    "horário de almoço",
	models.BlockBreak:    "pausa/intervalo",
	models.BlockDayOff:   "folga",
	models.BlockVacation: "férias",
	models.BlockCustom:   "bloqueio personalizado",
}

func validateNotBlocked(
	ctx context.Context,
	blocks BlockChecker,
	start time.Time,
	end time.Time,
	loc *time.Location,
) error {

	block, err := blocks.BlockInfo(ctx, start, end)
	if err != nil {
		return err
	}
	if block == nil {
		return nil
	}

	label := blockTypeLabels[block.Type]
	if label == "" {
		label = "bloqueio"
	}
	reason := ""
	if block.Reason != "" {
		reason = fmt.Sprintf(" (%s)", block.Reason)
	}

	return &domain.ConflictError{
		Message: fmt.Sprintf(
			"não é possível agendar neste horário. Há um %s%s das %s às %s",
			label,
			reason,
			block.StartsAt.In(loc).Format("15:04"),
			block.EndsAt.In(loc).Format("15:04"),
		),
	}
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
