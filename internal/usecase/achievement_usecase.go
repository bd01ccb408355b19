package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

// AchievementUsecase grants achievements whose requirements a learner has reached.
type AchievementUsecase interface {
	// CheckAndUnlock returns only the achievements granted by this call.
	CheckAndUnlock(ctx context.Context, learnerID int64) ([]entity.Achievement, error)
	ListGranted(ctx context.Context, learnerID int64) ([]entity.UserAchievement, error)
}

// NewAchievementUsecase wires the engine with its fact sources and reward unlocker.
func NewAchievementUsecase(
	achievements repository.AchievementRepository,
	progress repository.ProgressRepository,
	assignments repository.AssignmentRepository,
	rewards RewardUsecase,
	registry *RequirementRegistry,
	policy LearningPolicy,
	logger logrus.FieldLogger,
) AchievementUsecase {
	return &achievementUsecase{
		achievements: achievements,
		progress:     progress,
		assignments:  assignments,
		rewards:      rewards,
		registry:     registry,
		policy:       policy.withDefaults(),
		logger:       logger,
		clock:        time.Now,
	}
}

type achievementUsecase struct {
	achievements repository.AchievementRepository
	progress     repository.ProgressRepository
	assignments  repository.AssignmentRepository
	rewards      RewardUsecase
	registry     *RequirementRegistry
	policy       LearningPolicy
	logger       logrus.FieldLogger
	clock        func() time.Time
}

type measurement struct {
	met   bool
	value int64
}

func (u *achievementUsecase) CheckAndUnlock(ctx context.Context, learnerID int64) ([]entity.Achievement, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}

	pending, err := u.achievements.ListUngranted(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list ungranted achievements: %w", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	now := u.clock().In(u.policy.Location)
	facts := NewLearnerFacts(learnerID, now, u.progress, u.assignments)
	results := make([]measurement, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.policy.RequirementWorkers)
	for i, a := range pending {
		fn, ok := u.registry.Lookup(a.RequirementType)
		if !ok {
			u.logger.WithFields(logrus.Fields{
				"achievement_id":   a.ID,
				"requirement_type": a.RequirementType,
				"known_types":      u.registry.Types(),
			}).Warn("unknown requirement type; achievement can never be granted")
			continue
		}
		g.Go(func() error {
			met, value, err := fn(gctx, facts, a.RequirementValue)
			if err != nil {
				return fmt.Errorf("evaluate %s for achievement %d: %w", a.RequirementType, a.ID, err)
			}
			results[i] = measurement{met: met, value: value}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var granted []entity.Achievement
	for i, a := range pending {
		if !results[i].met {
			continue
		}
		created, err := u.achievements.Grant(ctx, learnerID, a.ID, results[i].value)
		if err != nil {
			return granted, fmt.Errorf("grant achievement %d: %w", a.ID, err)
		}
		if !created {
			continue
		}
		if err := u.issueReward(ctx, learnerID, &a); err != nil {
			return granted, err
		}
		u.logger.WithFields(logrus.Fields{
			"learner_id":     learnerID,
			"achievement_id": a.ID,
			"name":           a.Name,
			"value":          results[i].value,
		}).Info("achievement granted")
		granted = append(granted, a)
	}
	return granted, nil
}

func (u *achievementUsecase) issueReward(ctx context.Context, learnerID int64, a *entity.Achievement) error {
	if a.RewardType != entity.RewardAppUnlock {
		return nil
	}
	rewardID, ok := a.RewardID()
	if !ok {
		u.logger.WithFields(logrus.Fields{
			"achievement_id": a.ID,
			"reward_value":   a.RewardValue,
		}).Warn("app_unlock achievement has no valid reward id")
		return nil
	}
	if _, err := u.rewards.Unlock(ctx, learnerID, rewardID, u.policy.UnlockMinutes); err != nil {
		return fmt.Errorf("unlock reward %d: %w", rewardID, err)
	}
	return nil
}

func (u *achievementUsecase) ListGranted(ctx context.Context, learnerID int64) ([]entity.UserAchievement, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	return u.achievements.ListGranted(ctx, learnerID)
}
