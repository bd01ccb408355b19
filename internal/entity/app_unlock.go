package entity

import "time"

// AppUnlock grants a learner access to a reward until ExpiresAt; nil means permanent.
type AppUnlock struct {
	ID              int64
	LearnerID       int64
	RewardID        int64
	DurationMinutes int
	ExpiresAt       *time.Time
	UnlockedAt      time.Time
}

// ActiveAt reports whether the unlock still grants access at now.
func (u *AppUnlock) ActiveAt(now time.Time) bool {
	return u.ExpiresAt == nil || u.ExpiresAt.After(now)
}

// RewardStatus is the learner-facing view of an unlock.
type RewardStatus struct {
	RewardID  int64
	Unlocked  bool
	Active    bool
	ExpiresAt *time.Time
}
