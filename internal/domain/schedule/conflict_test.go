package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

func contender(id string, startHour, endHour int, createdMin int) Contender {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return Contender{
		ID:        id,
		Interval:  iv(startHour, endHour),
		CreatedAt: day.Add(time.Duration(createdMin) * time.Minute),
	}
}

func TestResolveConflict_FreeSlot(t *testing.T) {
	active := []Contender{
		contender("a", 8, 9, 0),
		contender("b", 14, 15, 1),
	}

	winner := ResolveConflict(iv(10, 11), "", active)
	assert.Nil(t, winner)
}

func TestResolveConflict_EarliestCreatedWins(t *testing.T) {
	// Both overlap the candidate; "b" was created first.
	active := []Contender{
		contender("a", 10, 11, 30),
		contender("b", 10, 12, 10),
	}

	winner := ResolveConflict(iv(10, 11), "", active)
	assert.NotNil(t, winner)
	assert.Equal(t, "b", winner.ID)
}

func TestResolveConflict_CreationTieBreaksByID(t *testing.T) {
	active := []Contender{
		contender("b", 10, 11, 10),
		contender("a", 10, 11, 10),
	}

	winner := ResolveConflict(iv(10, 11), "", active)
	assert.NotNil(t, winner)
	assert.Equal(t, "a", winner.ID)
}

// An appointment being rescheduled must never conflict with itself.
func TestResolveConflict_ExcludesSelf(t *testing.T) {
	active := []Contender{
		contender("self", 10, 11, 0),
	}

	winner := ResolveConflict(iv(10, 11), "self", active)
	assert.Nil(t, winner)
}

func TestResolveConflict_AdjacentDoesNotBlock(t *testing.T) {
	active := []Contender{
		contender("before", 9, 10, 0),
		contender("after", 11, 12, 0),
	}

	winner := ResolveConflict(iv(10, 11), "", active)
	assert.Nil(t, winner)
}

func TestContendersFrom_DisplayNames(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	linkedID := "u-1"
	aps := []models.Appointment{
		{
			ID:       "1",
			StartsAt: day.Add(10 * time.Hour),
			EndsAt:   day.Add(11 * time.Hour),
			Status:   "CONFIRMED",
			UserID:   &linkedID,
			User:     &models.User{Name: "João"},
			Service:  models.Service{Name: "Corte"},
		},
		{
			ID:         "2",
			StartsAt:   day.Add(11 * time.Hour),
			EndsAt:     day.Add(12 * time.Hour),
			Status:     "PENDING",
			ClientName: "Maria",
		},
		{
			ID:       "3",
			StartsAt: day.Add(12 * time.Hour),
			EndsAt:   day.Add(13 * time.Hour),
			Status:   "CONFIRMED",
		},
	}

	out := ContendersFrom(aps)
	assert.Len(t, out, 3)

	assert.Equal(t, "João", out[0].DisplayName)
	assert.Equal(t, "Corte", out[0].ServiceName)

	assert.Equal(t, "Maria", out[1].DisplayName)
	assert.Equal(t, "Serviço", out[1].ServiceName)

	assert.Equal(t, "Outro cliente", out[2].DisplayName)
}

// Canceled or finished appointments release their slot even if a query
// hands them back, so the projection must drop them.
func TestContendersFrom_SkipsInactive(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	ap := func(id, status string) models.Appointment {
		return models.Appointment{
			ID:       id,
			StartsAt: day.Add(10 * time.Hour),
			EndsAt:   day.Add(11 * time.Hour),
			Status:   status,
		}
	}

	aps := []models.Appointment{
		ap("canceled", "CANCELED"),
		ap("kept", "CONFIRMED"),
		ap("done", "COMPLETED"),
		ap("missed", "NO_SHOW"),
	}

	out := ContendersFrom(aps)
	assert.Len(t, out, 1)
	assert.Equal(t, "kept", out[0].ID)
}
