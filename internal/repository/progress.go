package repository

import (
	"context"
	"time"

	"github.com/eslsoft/learnpath/internal/entity"
)

// ProgressPredicate narrows progress counts.
type ProgressPredicate struct {
	LearnedOnly  bool
	CreatedSince *time.Time
}

// ListProgressQuery holds parameters for listing a learner's progress rows.
type ListProgressQuery struct {
	Pagination
	FilterOrder

	LearnerID int64
	// DueAt restricts results to rows whose next review is not after it.
	DueAt *time.Time
}

// ProgressRepository persists per-learner spaced-repetition state.
type ProgressRepository interface {
	// Get returns nil without error when the learner never studied the word.
	Get(ctx context.Context, learnerID, wordID int64) (*entity.Progress, error)
	Upsert(ctx context.Context, progress *entity.Progress) (*entity.Progress, error)
	Count(ctx context.Context, learnerID int64, pred ProgressPredicate) (int64, error)
	// ListStudyDates returns the last-studied timestamps of the learner's most
	// recent limit progress rows, newest first. limit <= 0 returns every row.
	ListStudyDates(ctx context.Context, learnerID int64, limit int) ([]time.Time, error)
	List(ctx context.Context, query *ListProgressQuery) ([]entity.Progress, int64, error)
}
