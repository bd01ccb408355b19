package entity

import "time"

// Progress tracks a learner's spaced-repetition state for a single word.
type Progress struct {
	ID            int64
	LearnerID     int64
	WordID        int64
	LearningLevel int
	Learned       bool
	LastStudied   time.Time
	NextReview    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsDue reports whether the word should be reviewed at now.
func (p *Progress) IsDue(now time.Time) bool {
	return !p.NextReview.After(now)
}

// Normalize fills timestamps before persistence.
func (p *Progress) Normalize(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
