package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

// RewardUsecase grants and reports time-boxed reward access.
type RewardUsecase interface {
	// Unlock grants access for minutes from now, replacing any earlier expiry.
	Unlock(ctx context.Context, learnerID, rewardID int64, minutes int) (*entity.AppUnlock, error)
	Status(ctx context.Context, learnerID, rewardID int64) (*entity.RewardStatus, error)
}

// NewRewardUsecase wires the unlock repository.
func NewRewardUsecase(repo repository.AppUnlockRepository, logger logrus.FieldLogger) RewardUsecase {
	return &rewardUsecase{
		repo:   repo,
		logger: logger,
		clock:  time.Now,
	}
}

type rewardUsecase struct {
	repo   repository.AppUnlockRepository
	logger logrus.FieldLogger
	clock  func() time.Time
}

func (u *rewardUsecase) Unlock(ctx context.Context, learnerID, rewardID int64, minutes int) (*entity.AppUnlock, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	if rewardID <= 0 {
		return nil, entity.ErrInvalidRewardID
	}
	if minutes <= 0 {
		return nil, entity.ErrInvalidUnlockDuration
	}

	now := u.clock()
	expires := now.Add(time.Duration(minutes) * time.Minute)
	unlock := &entity.AppUnlock{
		LearnerID:       learnerID,
		RewardID:        rewardID,
		DurationMinutes: minutes,
		ExpiresAt:       &expires,
		UnlockedAt:      now,
	}
	if err := u.repo.Upsert(ctx, unlock); err != nil {
		return nil, fmt.Errorf("upsert app unlock: %w", err)
	}

	u.logger.WithFields(logrus.Fields{
		"learner_id": learnerID,
		"reward_id":  rewardID,
		"expires_at": expires,
	}).Info("reward unlocked")
	return unlock, nil
}

func (u *rewardUsecase) Status(ctx context.Context, learnerID, rewardID int64) (*entity.RewardStatus, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	if rewardID <= 0 {
		return nil, entity.ErrInvalidRewardID
	}

	unlock, err := u.repo.Get(ctx, learnerID, rewardID)
	if err != nil {
		return nil, fmt.Errorf("get app unlock: %w", err)
	}
	status := &entity.RewardStatus{RewardID: rewardID}
	if unlock == nil {
		return status, nil
	}
	status.Unlocked = true
	status.Active = unlock.ActiveAt(u.clock())
	status.ExpiresAt = unlock.ExpiresAt
	return status, nil
}
