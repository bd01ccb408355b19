package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

const appUnlocksTable = "app_unlocks"

type AppUnlockRepository struct {
	store
}

// NewAppUnlockRepository constructs the reward unlock repository.
func NewAppUnlockRepository(drv *entsql.Driver) repository.AppUnlockRepository {
	return &AppUnlockRepository{store: store{drv: drv}}
}

func (r *AppUnlockRepository) Upsert(ctx context.Context, u *entity.AppUnlock) error {
	q := r.builder().Insert(appUnlocksTable).
		Columns("learner_id", "reward_id", "duration_minutes", "expires_at", "unlocked_at").
		Values(u.LearnerID, u.RewardID, u.DurationMinutes, nullTime(u.ExpiresAt), u.UnlockedAt.UTC()).
		OnConflict(
			entsql.ConflictColumns("learner_id", "reward_id"),
			entsql.ResolveWith(func(set *entsql.UpdateSet) {
				set.SetExcluded("duration_minutes")
				set.SetExcluded("expires_at")
				set.SetExcluded("unlocked_at")
			}),
		)
	if _, err := r.exec(ctx, q); err != nil {
		return fmt.Errorf("upsert app unlock: %w", err)
	}
	return nil
}

func (r *AppUnlockRepository) Get(ctx context.Context, learnerID, rewardID int64) (*entity.AppUnlock, error) {
	b := r.builder()
	q := b.Select("id", "learner_id", "reward_id", "duration_minutes", "expires_at", "unlocked_at").
		From(b.Table(appUnlocksTable)).
		Where(entsql.EQ("learner_id", learnerID)).
		Where(entsql.EQ("reward_id", rewardID))

	var (
		u       entity.AppUnlock
		expires sql.NullTime
	)
	err := r.queryRow(ctx, q, &u.ID, &u.LearnerID, &u.RewardID, &u.DurationMinutes, &expires, &u.UnlockedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.ExpiresAt = timePtr(expires)
	return &u, nil
}
