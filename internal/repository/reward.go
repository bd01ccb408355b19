package repository

import (
	"context"

	"github.com/eslsoft/learnpath/internal/entity"
)

// AppUnlockRepository stores reward unlocks keyed by (learner, reward).
type AppUnlockRepository interface {
	Upsert(ctx context.Context, unlock *entity.AppUnlock) error
	// Get returns nil without error when the reward was never unlocked.
	Get(ctx context.Context, learnerID, rewardID int64) (*entity.AppUnlock, error)
}
