package repository

import (
	"context"
	"database/sql"
	"errors"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

type WordRepository struct {
	store
}

// NewWordRepository constructs a catalog reader.
func NewWordRepository(drv *entsql.Driver) repository.WordRepository {
	return &WordRepository{store: store{drv: drv}}
}

func (r *WordRepository) GetByID(ctx context.Context, id int64) (*entity.Word, error) {
	b := r.builder()
	q := b.Select("id", "text", "meaning", "example", "difficulty_level", "grade_level", "subject", "created_at").
		From(b.Table("words")).
		Where(entsql.EQ("id", id))

	var (
		w       entity.Word
		example sql.NullString
	)
	err := r.queryRow(ctx, q, &w.ID, &w.Text, &w.Meaning, &example, &w.DifficultyLevel, &w.GradeLevel, &w.Subject, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}
	w.Example = example.String
	return &w, nil
}
