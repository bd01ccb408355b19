package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

// StudyResult reports the state of a word after a study event.
type StudyResult struct {
	Progress        *entity.Progress
	NewAchievements []entity.Achievement
}

// StudyUsecase records study events and lists words due for review.
type StudyUsecase interface {
	StudyWord(ctx context.Context, learnerID, wordID int64, correct bool) (*StudyResult, error)
	ListDueWords(ctx context.Context, query *repository.ListProgressQuery) ([]entity.Progress, int64, error)
}

// NewStudyUsecase wires the scheduler with progress storage and the achievement engine.
func NewStudyUsecase(
	words repository.WordRepository,
	progress repository.ProgressRepository,
	achievements AchievementUsecase,
	policy LearningPolicy,
	logger logrus.FieldLogger,
) StudyUsecase {
	policy = policy.withDefaults()
	return &studyUsecase{
		words:        words,
		progress:     progress,
		achievements: achievements,
		scheduler:    NewScheduler(policy.ReviewIntervals, policy.MasteryThreshold),
		location:     policy.Location,
		logger:       logger,
		clock:        time.Now,
	}
}

type studyUsecase struct {
	words        repository.WordRepository
	progress     repository.ProgressRepository
	achievements AchievementUsecase
	scheduler    *Scheduler
	location     *time.Location
	logger       logrus.FieldLogger
	clock        func() time.Time
}

func (u *studyUsecase) StudyWord(ctx context.Context, learnerID, wordID int64, correct bool) (*StudyResult, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	if wordID <= 0 {
		return nil, entity.ErrInvalidWordID
	}
	if _, err := u.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}

	prior, err := u.progress.Get(ctx, learnerID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	now := u.clock().In(u.location)
	next := u.scheduler.Next(prior, correct, now)

	record := &entity.Progress{LearnerID: learnerID, WordID: wordID}
	if prior != nil {
		record.ID = prior.ID
		record.CreatedAt = prior.CreatedAt
	}
	record.LearningLevel = next.Level
	record.Learned = next.Learned
	record.LastStudied = next.LastStudied
	record.NextReview = next.NextReview
	record.Normalize(now)

	saved, err := u.progress.Upsert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	return &StudyResult{
		Progress:        saved,
		NewAchievements: checkAchievements(ctx, u.achievements, u.logger, learnerID),
	}, nil
}

func (u *studyUsecase) ListDueWords(ctx context.Context, query *repository.ListProgressQuery) ([]entity.Progress, int64, error) {
	if query == nil || query.LearnerID <= 0 {
		return nil, 0, entity.ErrInvalidLearnerID
	}
	if query.DueAt == nil {
		now := u.clock()
		query.DueAt = &now
	}
	return u.progress.List(ctx, query)
}

// checkAchievements runs the engine after the learner's activity is already
// stored. Failures are logged and leave the achievements pending for the next check.
func checkAchievements(ctx context.Context, engine AchievementUsecase, logger logrus.FieldLogger, learnerID int64) []entity.Achievement {
	granted, err := engine.CheckAndUnlock(ctx, learnerID)
	if err != nil {
		logger.WithError(err).WithField("learner_id", learnerID).Warn("achievement check failed")
	}
	if granted == nil {
		return []entity.Achievement{}
	}
	return granted
}
