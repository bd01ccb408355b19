package repository

import (
	"context"

	"github.com/eslsoft/learnpath/internal/entity"
)

// AchievementRepository stores the achievement catalog and its grants.
type AchievementRepository interface {
	// ListUngranted returns catalog entries the learner has not earned yet.
	ListUngranted(ctx context.Context, learnerID int64) ([]entity.Achievement, error)
	// Grant records the achievement; granted is false when it already existed.
	Grant(ctx context.Context, learnerID, achievementID, progressValue int64) (granted bool, err error)
	ListGranted(ctx context.Context, learnerID int64) ([]entity.UserAchievement, error)
	UpsertDefinition(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error)
}
