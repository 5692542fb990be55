package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// Service owns the singleton business-settings row. Reads go through an
// optional short-lived cache; the row is created with defaults on first
// access.
type Service struct {
	db    *gorm.DB
	cache *Cache
}

func NewService(db *gorm.DB, cache *Cache) *Service {
	return &Service{db: db, cache: cache}
}

type UpdateInput struct {
	BusinessName    *string `json:"business_name"`
	OpenTime        *string `json:"open_time"`
	CloseTime       *string `json:"close_time"`
	WorkingDays     []int   `json:"working_days"`
	SlotIntervalMin *int    `json:"slot_interval_min"`
	MaxAdvanceDays  *int    `json:"max_advance_days"`
	MinAdvanceHours *int    `json:"min_advance_hours"`
}

func (s *Service) Get(ctx context.Context) (*models.Settings, error) {
	if cached := s.cache.Get(ctx); cached != nil {
		return cached, nil
	}

	var st models.Settings
	err := s.db.WithContext(ctx).First(&st).Error
	if err == gorm.ErrRecordNotFound {
		st = models.Settings{
			BusinessName:    "Barber Boss",
			OpenTime:        "08:00",
			CloseTime:       "18:00",
			WorkingDays:     []int{1, 2, 3, 4, 5, 6},
			SlotIntervalMin: 15,
			MaxAdvanceDays:  30,
			MinAdvanceHours: 2,
		}
		if err := s.db.WithContext(ctx).Create(&st).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, &st)
	return &st, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if in.BusinessName != nil {
		current.BusinessName = strings.TrimSpace(*in.BusinessName)
	}
	if in.OpenTime != nil {
		current.OpenTime = *in.OpenTime
	}
	if in.CloseTime != nil {
		current.CloseTime = *in.CloseTime
	}
	if in.WorkingDays != nil {
		current.WorkingDays = in.WorkingDays
	}
	if in.SlotIntervalMin != nil {
		current.SlotIntervalMin = *in.SlotIntervalMin
	}
	if in.MaxAdvanceDays != nil {
		current.MaxAdvanceDays = *in.MaxAdvanceDays
	}
	if in.MinAdvanceHours != nil {
		current.MinAdvanceHours = *in.MinAdvanceHours
	}

	if err := validate(current); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(current).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return current, nil
}

func validate(st *models.Settings) error {
	openMin, err := TimeToMinutes(st.OpenTime)
	if err != nil {
		return domain.Validationf("horário de abertura inválido: %s", st.OpenTime)
	}
	closeMin, err := TimeToMinutes(st.CloseTime)
	if err != nil {
		return domain.Validationf("horário de fechamento inválido: %s", st.CloseTime)
	}
	if openMin >= closeMin {
		return domain.Validationf("o horário de abertura deve ser anterior ao horário de fechamento")
	}

	seen := map[int]bool{}
	for _, d := range st.WorkingDays {
		if d < 0 || d > 6 {
			return domain.Validationf("dia da semana inválido: %d", d)
		}
		if seen[d] {
			return domain.Validationf("workingDays não pode ter dias duplicados")
		}
		seen[d] = true
	}

	if st.SlotIntervalMin <= 0 {
		return domain.Validationf("slotIntervalMin deve ser positivo")
	}
	return nil
}

// TimeToMinutes converts an HH:mm string to minutes since midnight.
func TimeToMinutes(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return h*60 + m, nil
}

var dayNames = []string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

func DayName(day int) string {
	if day < 0 || day > 6 {
		return "Dia inválido"
	}
	return dayNames[day]
}
