package appointment

import (
	"context"
	"time"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// SettingsProvider supplies the business configuration (hours, working
// days, advance limits).
type SettingsProvider interface {
	Get(ctx context.Context) (*models.Settings, error)
}

// BlockChecker answers whether an interval crosses a blocked period.
type BlockChecker interface {
	BlockInfo(ctx context.Context, start, end time.Time) (*models.TimeBlock, error)
	IsBlocked(ctx context.Context, start, end time.Time) (bool, error)
}
