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
)

const (
	achievementsTable     = "achievements"
	userAchievementsTable = "user_achievements"
)

var achievementColumns = []string{"id", "name", "description", "icon", "requirement_type", "requirement_value", "reward_type", "reward_value", "created_at"}

type AchievementRepository struct {
	store
	clock func() time.Time
}

// NewAchievementRepository constructs the catalog and grant repository.
func NewAchievementRepository(drv *entsql.Driver) repository.AchievementRepository {
	return &AchievementRepository{store: store{drv: drv}, clock: time.Now}
}

func scanAchievement(dest *entity.Achievement) []any {
	return []any{
		&dest.ID, &dest.Name, &dest.Description, &dest.Icon,
		(*string)(&dest.RequirementType), &dest.RequirementValue,
		(*string)(&dest.RewardType), &dest.RewardValue, &dest.CreatedAt,
	}
}

func (r *AchievementRepository) ListUngranted(ctx context.Context, learnerID int64) ([]entity.Achievement, error) {
	b := r.builder()
	a := b.Table(achievementsTable).As("a")
	ua := b.Table(userAchievementsTable).As("ua")
	cols := make([]string, len(achievementColumns))
	for i, c := range achievementColumns {
		cols[i] = a.C(c)
	}
	q := b.Select(cols...).
		From(a).
		LeftJoin(ua).
		OnP(entsql.And(
			entsql.ColumnsEQ(ua.C("achievement_id"), a.C("id")),
			entsql.EQ(ua.C("learner_id"), learnerID),
		)).
		Where(entsql.IsNull(ua.C("id"))).
		OrderBy(entsql.Asc(a.C("id")))

	items, err := queryAll(ctx, r.store, q, func(rows *sql.Rows) (entity.Achievement, error) {
		var item entity.Achievement
		err := rows.Scan(scanAchievement(&item)...)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("list ungranted achievements: %w", err)
	}
	return items, nil
}

func (r *AchievementRepository) Grant(ctx context.Context, learnerID, achievementID, progressValue int64) (bool, error) {
	q := r.builder().Insert(userAchievementsTable).
		Columns("learner_id", "achievement_id", "progress_value", "earned_at").
		Values(learnerID, achievementID, progressValue, r.clock().UTC()).
		OnConflict(
			entsql.ConflictColumns("learner_id", "achievement_id"),
			entsql.DoNothing(),
		)
	res, err := r.exec(ctx, q)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("grant achievement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("grant achievement: %w", err)
	}
	return affected > 0, nil
}

func (r *AchievementRepository) ListGranted(ctx context.Context, learnerID int64) ([]entity.UserAchievement, error) {
	b := r.builder()
	a := b.Table(achievementsTable).As("a")
	ua := b.Table(userAchievementsTable).As("ua")
	cols := []string{ua.C("id"), ua.C("learner_id"), ua.C("achievement_id"), ua.C("progress_value"), ua.C("earned_at")}
	for _, c := range achievementColumns {
		cols = append(cols, a.C(c))
	}
	q := b.Select(cols...).
		From(ua).
		Join(a).
		On(ua.C("achievement_id"), a.C("id")).
		Where(entsql.EQ(ua.C("learner_id"), learnerID)).
		OrderBy(entsql.Asc(ua.C("earned_at")), entsql.Asc(ua.C("id")))

	items, err := queryAll(ctx, r.store, q, func(rows *sql.Rows) (entity.UserAchievement, error) {
		var (
			grant entity.UserAchievement
			def   entity.Achievement
		)
		dest := append([]any{&grant.ID, &grant.LearnerID, &grant.AchievementID, &grant.ProgressValue, &grant.EarnedAt}, scanAchievement(&def)...)
		if err := rows.Scan(dest...); err != nil {
			return grant, err
		}
		grant.Achievement = &def
		return grant, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list granted achievements: %w", err)
	}
	if items == nil {
		items = []entity.UserAchievement{}
	}
	return items, nil
}

// UpsertDefinition inserts a catalog entry or updates the one with the same name.
func (r *AchievementRepository) UpsertDefinition(ctx context.Context, a *entity.Achievement) (*entity.Achievement, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rewardType := a.RewardType
	if rewardType == "" {
		rewardType = entity.RewardNone
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.clock()
	}
	ins := r.builder().Insert(achievementsTable).
		Columns("name", "description", "icon", "requirement_type", "requirement_value", "reward_type", "reward_value", "created_at").
		Values(a.Name, a.Description, a.Icon, string(a.RequirementType), a.RequirementValue, string(rewardType), a.RewardValue, createdAt.UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("description")
				u.SetExcluded("icon")
				u.SetExcluded("requirement_type")
				u.SetExcluded("requirement_value")
				u.SetExcluded("reward_type")
				u.SetExcluded("reward_value")
			}),
		)
	if _, err := r.exec(ctx, ins); err != nil {
		return nil, fmt.Errorf("upsert achievement: %w", err)
	}

	b := r.builder()
	sel := b.Select(achievementColumns...).
		From(b.Table(achievementsTable)).
		Where(entsql.EQ("name", a.Name))
	var saved entity.Achievement
	err := r.queryRow(ctx, sel, scanAchievement(&saved)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAchievementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
