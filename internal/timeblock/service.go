package timeblock

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// Service manages blocked intervals (lunch, breaks, days off, vacation)
// that no appointment may cross.
type Service struct {
	db  *gorm.DB
	loc *time.Location
}

func NewService(db *gorm.DB, loc *time.Location) *Service {
	return &Service{db: db, loc: loc}
}

type CreateInput struct {
	Type          string    `json:"type"`
	Reason        string    `json:"reason"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
	IsRecurring   bool      `json:"is_recurring"`
	RecurringDays []int     `json:"recurring_days"`
}

type UpdateInput struct {
	Type          *string    `json:"type"`
	Reason        *string    `json:"reason"`
	StartsAt      *time.Time `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at"`
	IsRecurring   *bool      `json:"is_recurring"`
	RecurringDays []int      `json:"recurring_days"`
}

var validTypes = map[string]bool{
	models.BlockLunch:    true,
	models.BlockBreak:    true,
	models.BlockDayOff:   true,
	models.BlockVacation: true,
	models.BlockCustom:   true,
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.TimeBlock, error) {
	if !in.StartsAt.Before(in.EndsAt) {
		return nil, domain.Validationf("a data de início deve ser anterior à data de término")
	}

	blockType := in.Type
	if blockType == "" {
		blockType = models.BlockCustom
	}
	if !validTypes[blockType] {
		return nil, domain.Validationf("tipo de bloqueio inválido: %s", in.Type)
	}

	if in.IsRecurring && len(in.RecurringDays) == 0 {
		return nil, domain.Validationf("recurringDays é obrigatório quando isRecurring é true")
	}
	for _, d := range in.RecurringDays {
		if d < 0 || d > 6 {
			return nil, domain.Validationf("dia recorrente inválido: %d", d)
		}
	}

	block := models.TimeBlock{
		Type:          blockType,
		Reason:        in.Reason,
		StartsAt:      in.StartsAt,
		EndsAt:        in.EndsAt,
		IsRecurring:   in.IsRecurring,
		RecurringDays: in.RecurringDays,
		Active:        true,
	}

	if err := s.db.WithContext(ctx).Create(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (s *Service) List(ctx context.Context) ([]models.TimeBlock, error) {
	var blocks []models.TimeBlock
	err := s.db.WithContext(ctx).
		Where("active = true").
		Order("starts_at ASC").
		Find(&blocks).Error
	return blocks, err
}

func (s *Service) Get(ctx context.Context, id string) (*models.TimeBlock, error) {
	var block models.TimeBlock
	err := s.db.WithContext(ctx).First(&block, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Resource: "bloqueio de horário", ID: id}
	}
	if err != nil {
		return nil, err
	}
	if !block.Active {
		return nil, &domain.NotFoundError{Resource: "bloqueio de horário", ID: id}
	}
	return &block, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.TimeBlock, error) {
	block, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Type != nil {
		if !validTypes[*in.Type] {
			return nil, domain.Validationf("tipo de bloqueio inválido: %s", *in.Type)
		}
		block.Type = *in.Type
	}
	if in.Reason != nil {
		block.Reason = *in.Reason
	}
	if in.StartsAt != nil {
		block.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		block.EndsAt = *in.EndsAt
	}
	if in.IsRecurring != nil {
		block.IsRecurring = *in.IsRecurring
	}
	if in.RecurringDays != nil {
		block.RecurringDays = in.RecurringDays
	}

	if !block.StartsAt.Before(block.EndsAt) {
		return nil, domain.Validationf("a data de início deve ser anterior à data de término")
	}
	if block.IsRecurring && len(block.RecurringDays) == 0 {
		return nil, domain.Validationf("recurringDays é obrigatório quando isRecurring é true")
	}

	if err := s.db.WithContext(ctx).Save(block).Error; err != nil {
		return nil, err
	}
	return block, nil
}

// Delete deactivates the block; rows are kept for history.
func (s *Service) Delete(ctx context.Context, id string) (*models.TimeBlock, error) {
	block, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	block.Active = false
	if err := s.db.WithContext(ctx).Save(block).Error; err != nil {
		return nil, err
	}
	return block, nil
}

// BlockInfo returns the block covering any part of [start, end), or nil.
// One-off blocks match by interval overlap; recurring blocks match when
// the weekday is listed and the minute-of-day ranges overlap in the
// business timezone.
func (s *Service) BlockInfo(ctx context.Context, start, end time.Time) (*models.TimeBlock, error) {
	var blocks []models.TimeBlock
	err := s.db.WithContext(ctx).
		Where("active = true").
		Where(
			"is_recurring = true OR (starts_at < ? AND ends_at > ?)",
			end, start,
		).
		Order("starts_at ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}

	candidate := domain.Interval{Start: start, End: end}
	weekday := int(start.In(s.loc).Weekday())

	for i := range blocks {
		b := &blocks[i]

		if !b.IsRecurring {
			if candidate.Overlaps(domain.Interval{Start: b.StartsAt, End: b.EndsAt}) {
				return b, nil
			}
			continue
		}

		if !containsDay(b.RecurringDays, weekday) {
			continue
		}

		blockStart := minuteOfDay(b.StartsAt.In(s.loc))
		blockEnd := minuteOfDay(b.EndsAt.In(s.loc))
		apStart := minuteOfDay(start.In(s.loc))
		apEnd := minuteOfDay(end.In(s.loc))

		if apStart < blockEnd && blockStart < apEnd {
			return b, nil
		}
	}

	return nil, nil
}

// IsBlocked is the boolean form of BlockInfo.
func (s *Service) IsBlocked(ctx context.Context, start, end time.Time) (bool, error) {
	block, err := s.BlockInfo(ctx, start, end)
	if err != nil {
		return false, err
	}
	return block != nil, nil
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
