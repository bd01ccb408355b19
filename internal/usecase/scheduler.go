package usecase

import (
	"time"

	"github.com/eslsoft/learnpath/internal/entity"
)

// Scheduling defaults.
var DefaultReviewIntervals = []int{1, 3, 7, 14, 30, 90, 180}

const DefaultMasteryThreshold = 3

// ScheduleResult is the spaced-repetition state after one study event.
type ScheduleResult struct {
	Level       int
	Learned     bool
	LastStudied time.Time
	NextReview  time.Time
}

// Scheduler moves a word along the review interval table.
type Scheduler struct {
	intervals []int
	threshold int
}

// NewScheduler builds a scheduler; an empty table or non-positive threshold falls back to the defaults.
func NewScheduler(intervals []int, masteryThreshold int) *Scheduler {
	if len(intervals) == 0 {
		intervals = DefaultReviewIntervals
	}
	if masteryThreshold <= 0 {
		masteryThreshold = DefaultMasteryThreshold
	}
	return &Scheduler{
		intervals: append([]int(nil), intervals...),
		threshold: masteryThreshold,
	}
}

// MaxLevel is the highest learning level.
func (s *Scheduler) MaxLevel() int { return len(s.intervals) - 1 }

// Next applies one study outcome. prior is nil for a word never studied.
// A word once learned stays learned regardless of later mistakes.
func (s *Scheduler) Next(prior *entity.Progress, correct bool, now time.Time) ScheduleResult {
	level := 0
	learned := false
	if prior != nil {
		level = min(max(prior.LearningLevel, 0), s.MaxLevel())
		learned = prior.Learned
		if correct {
			level = min(level+1, s.MaxLevel())
		} else {
			level = max(level-1, 0)
		}
	} else if correct {
		level = min(1, s.MaxLevel())
	}
	if level >= s.threshold {
		learned = true
	}

	today := entity.StartOfDay(now)
	return ScheduleResult{
		Level:       level,
		Learned:     learned,
		LastStudied: today,
		NextReview:  entity.AddDays(today, s.intervals[level]),
	}
}
