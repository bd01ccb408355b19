package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
	"github.com/eslsoft/learnpath/pkg/filterexpr"
)

const progressTable = "learner_progress"

var progressColumns = []string{"id", "learner_id", "word_id", "learning_level", "learned", "last_studied", "next_review", "created_at", "updated_at"}

type ProgressRepository struct {
	store
}

// NewProgressRepository constructs a progress repository on the ent SQL driver.
func NewProgressRepository(drv *entsql.Driver) repository.ProgressRepository {
	return &ProgressRepository{store: store{drv: drv}}
}

type listProgressParams struct {
	Learned      *bool
	Level        *int
	MinLevel     *int
	MaxLevel     *int
	ReviewAfter  *time.Time
	ReviewBefore *time.Time
	WordID       *int64
}

func scanProgress(rows *sql.Rows) (entity.Progress, error) {
	var p entity.Progress
	err := rows.Scan(&p.ID, &p.LearnerID, &p.WordID, &p.LearningLevel, &p.Learned, &p.LastStudied, &p.NextReview, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProgressRepository) Get(ctx context.Context, learnerID, wordID int64) (*entity.Progress, error) {
	b := r.builder()
	q := b.Select(progressColumns...).
		From(b.Table(progressTable)).
		Where(entsql.EQ("learner_id", learnerID)).
		Where(entsql.EQ("word_id", wordID))

	items, err := queryAll(ctx, r.store, q, scanProgress)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *ProgressRepository) Upsert(ctx context.Context, p *entity.Progress) (*entity.Progress, error) {
	q := r.builder().Insert(progressTable).
		Columns("learner_id", "word_id", "learning_level", "learned", "last_studied", "next_review", "created_at", "updated_at").
		Values(p.LearnerID, p.WordID, p.LearningLevel, p.Learned, p.LastStudied.UTC(), p.NextReview.UTC(), p.CreatedAt.UTC(), p.UpdatedAt.UTC()).
		OnConflict(
			entsql.ConflictColumns("learner_id", "word_id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("learning_level")
				u.SetExcluded("learned")
				u.SetExcluded("last_studied")
				u.SetExcluded("next_review")
				u.SetExcluded("updated_at")
			}),
		)
	if _, err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	saved, err := r.Get(ctx, p.LearnerID, p.WordID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, errors.New("upsert progress: row vanished after write")
	}
	return saved, nil
}

func (r *ProgressRepository) Count(ctx context.Context, learnerID int64, pred repository.ProgressPredicate) (int64, error) {
	b := r.builder()
	q := b.Select(entsql.Count("*")).
		From(b.Table(progressTable)).
		Where(entsql.EQ("learner_id", learnerID))
	if pred.LearnedOnly {
		q.Where(entsql.EQ("learned", true))
	}
	if pred.CreatedSince != nil {
		q.Where(entsql.GTE("created_at", pred.CreatedSince.UTC()))
	}
	return r.count(ctx, q)
}

func (r *ProgressRepository) ListStudyDates(ctx context.Context, learnerID int64, limit int) ([]time.Time, error) {
	b := r.builder()
	q := b.Select("last_studied").
		From(b.Table(progressTable)).
		Where(entsql.EQ("learner_id", learnerID)).
		OrderBy(entsql.Desc("last_studied"), entsql.Desc("id"))
	if limit > 0 {
		q.Limit(limit)
	}

	return queryAll(ctx, r.store, q, func(rows *sql.Rows) (time.Time, error) {
		var t time.Time
		err := rows.Scan(&t)
		return t, err
	})
}

func (r *ProgressRepository) List(ctx context.Context, query *repository.ListProgressQuery) ([]entity.Progress, int64, error) {
	if query == nil {
		return nil, 0, errors.New("list query required")
	}
	var params listProgressParams
	order, err := filterexpr.Bind(query, &params, listProgressSchema)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", entity.ErrInvalidListQuery, err)
	}

	b := r.builder()
	where := []*entsql.Predicate{entsql.EQ("learner_id", query.LearnerID)}
	if query.DueAt != nil {
		where = append(where, entsql.LTE("next_review", query.DueAt.UTC()))
	}
	if params.Learned != nil {
		where = append(where, entsql.EQ("learned", *params.Learned))
	}
	if params.Level != nil {
		where = append(where, entsql.EQ("learning_level", *params.Level))
	}
	if params.MinLevel != nil {
		where = append(where, entsql.GTE("learning_level", *params.MinLevel))
	}
	if params.MaxLevel != nil {
		where = append(where, entsql.LTE("learning_level", *params.MaxLevel))
	}
	if params.ReviewAfter != nil {
		where = append(where, entsql.GTE("next_review", params.ReviewAfter.UTC()))
	}
	if params.ReviewBefore != nil {
		where = append(where, entsql.LTE("next_review", params.ReviewBefore.UTC()))
	}
	if params.WordID != nil {
		where = append(where, entsql.EQ("word_id", *params.WordID))
	}

	total, err := r.count(ctx, b.Select(entsql.Count("*")).From(b.Table(progressTable)).Where(entsql.And(where...)))
	if err != nil {
		return nil, 0, fmt.Errorf("count progress: %w", err)
	}

	q := b.Select(progressColumns...).From(b.Table(progressTable)).Where(entsql.And(where...))
	applyOrder(q, order)
	if query.PageSize > 0 {
		q.Limit(int(query.PageSize)).Offset(int(query.Offset()))
	}

	items, err := queryAll(ctx, r.store, q, scanProgress)
	if err != nil {
		return nil, 0, fmt.Errorf("list progress: %w", err)
	}
	if items == nil {
		items = []entity.Progress{}
	}
	return items, total, nil
}

func applyOrder(q *entsql.Selector, order filterexpr.Order) {
	for _, term := range order.Terms() {
		if term.Desc {
			q.OrderBy(entsql.Desc(term.Column))
		} else {
			q.OrderBy(entsql.Asc(term.Column))
		}
	}
}
