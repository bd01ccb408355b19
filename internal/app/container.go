package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/infrastructure/config"
	"github.com/eslsoft/learnpath/internal/infrastructure/server"
	"github.com/eslsoft/learnpath/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	Server       *server.Server
	Achievements usecase.AchievementUsecase
	Rewards      usecase.RewardUsecase
}

// newLearningPolicy turns the learning section of the config into engine policy.
func newLearningPolicy(cfg *config.Config) (usecase.LearningPolicy, error) {
	intervals, err := cfg.Learning.Intervals()
	if err != nil {
		return usecase.LearningPolicy{}, err
	}
	loc, err := cfg.Learning.Location()
	if err != nil {
		return usecase.LearningPolicy{}, err
	}
	policy := usecase.LearningPolicy{
		ReviewIntervals:    intervals,
		MasteryThreshold:   cfg.Learning.MasteryThreshold,
		UnlockMinutes:      cfg.Learning.UnlockMinutes,
		RequirementWorkers: cfg.Learning.RequirementWorkers,
		Location:           loc,
	}
	if len(intervals) > 0 && policy.MasteryThreshold >= len(intervals) {
		return usecase.LearningPolicy{}, fmt.Errorf("learning.mastery_threshold %d exceeds the top level %d", policy.MasteryThreshold, len(intervals)-1)
	}
	return policy, nil
}
