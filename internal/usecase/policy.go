package usecase

import "time"

// DefaultUnlockMinutes is how long an app_unlock reward stays active.
const DefaultUnlockMinutes = 30

// LearningPolicy carries the tunable values of the progression engine.
type LearningPolicy struct {
	ReviewIntervals  []int
	MasteryThreshold int
	UnlockMinutes    int
	// RequirementWorkers bounds concurrent requirement checks per learner.
	RequirementWorkers int
	// Location defines the learner's calendar day boundary.
	Location *time.Location
}

// DefaultLearningPolicy returns the production defaults.
func DefaultLearningPolicy() LearningPolicy {
	return LearningPolicy{
		ReviewIntervals:    DefaultReviewIntervals,
		MasteryThreshold:   DefaultMasteryThreshold,
		UnlockMinutes:      DefaultUnlockMinutes,
		RequirementWorkers: 4,
		Location:           time.UTC,
	}
}

func (p LearningPolicy) withDefaults() LearningPolicy {
	def := DefaultLearningPolicy()
	if len(p.ReviewIntervals) == 0 {
		p.ReviewIntervals = def.ReviewIntervals
	}
	if p.MasteryThreshold <= 0 {
		p.MasteryThreshold = def.MasteryThreshold
	}
	if p.UnlockMinutes <= 0 {
		p.UnlockMinutes = def.UnlockMinutes
	}
	if p.RequirementWorkers <= 0 {
		p.RequirementWorkers = def.RequirementWorkers
	}
	if p.Location == nil {
		p.Location = def.Location
	}
	return p
}
