package entity

import (
	"strconv"
	"strings"
	"time"
)

// RequirementType names the learner fact an achievement is measured against.
type RequirementType string

const (
	RequirementWordsLearned         RequirementType = "words_learned"
	RequirementDailyStreak          RequirementType = "daily_streak"
	RequirementAssignmentsCompleted RequirementType = "assignments_completed"
	RequirementPerfectScores        RequirementType = "perfect_scores"
	RequirementWordsPerDay          RequirementType = "words_per_day"
)

// RewardType describes what granting an achievement hands out.
type RewardType string

const (
	RewardNone      RewardType = "none"
	RewardBadge     RewardType = "badge"
	RewardAppUnlock RewardType = "app_unlock"
)

// Achievement is a catalog entry with a requirement threshold and an optional reward.
type Achievement struct {
	ID               int64
	Name             string
	Description      string
	Icon             string
	RequirementType  RequirementType
	RequirementValue int64
	RewardType       RewardType
	RewardValue      string
	CreatedAt        time.Time
}

// RewardID parses the reward value as the id of an unlockable reward.
func (a *Achievement) RewardID() (int64, bool) {
	if a.RewardType != RewardAppUnlock {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(a.RewardValue), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Validate checks a catalog definition before it is stored.
func (a *Achievement) Validate() error {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(string(a.RequirementType)) == "" {
		return ErrInvalidAchievement
	}
	if a.RequirementValue < 0 {
		return ErrInvalidAchievement
	}
	switch a.RewardType {
	case "", RewardNone, RewardBadge:
	case RewardAppUnlock:
		if _, ok := a.RewardID(); !ok {
			return ErrInvalidAchievement
		}
	default:
		return ErrInvalidAchievement
	}
	return nil
}

// UserAchievement is a granted achievement.
type UserAchievement struct {
	ID            int64
	LearnerID     int64
	AchievementID int64
	ProgressValue int64
	EarnedAt      time.Time
	Achievement   *Achievement
}
