package schedule

import (
	"time"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// ===============================
// Conflict Resolver
// ===============================

// Contender is one existing active appointment competing for a time range.
type Contender struct {
	ID          string
	Interval    Interval
	CreatedAt   time.Time
	DisplayName string
	ServiceName string
}

// ResolveConflict returns the existing appointment that blocks the
// candidate interval, or nil when the slot is free. excludeID removes the
// appointment being updated so it never conflicts with itself. Among
// overlapping appointments the earliest-created one wins (first come,
// first served); creation-time ties break by id so the result is
// deterministic.
func ResolveConflict(candidate Interval, excludeID string, active []Contender) *Contender {
	var winner *Contender

	for i := range active {
		c := &active[i]
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		if !candidate.Overlaps(c.Interval) {
			continue
		}
		if winner == nil || earlier(c, winner) {
			winner = c
		}
	}

	return winner
}

func earlier(a, b *Contender) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// ContendersFrom projects persisted appointments into resolver input,
// skipping appointments whose status no longer holds the slot.
// The fallback display name mirrors the rejection message wording when an
// appointment has neither a linked user nor a manual client name.
func ContendersFrom(aps []models.Appointment) []Contender {
	out := make([]Contender, 0, len(aps))
	for _, ap := range aps {
		if !Status(ap.Status).Active() {
			continue
		}

		name := ap.ClientName
		if ap.User != nil && ap.User.Name != "" {
			name = ap.User.Name
		}
		if name == "" {
			name = "Outro cliente"
		}

		serviceName := "Serviço"
		if ap.Service.Name != "" {
			serviceName = ap.Service.Name
		}

		out = append(out, Contender{
			ID:          ap.ID,
			Interval:    Interval{Start: ap.StartsAt, End: ap.EndsAt},
			CreatedAt:   ap.CreatedAt,
			DisplayName: name,
			ServiceName: serviceName,
		})
	}
	return out
}
