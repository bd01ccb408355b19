package repository

import (
	"context"

	"github.com/eslsoft/learnpath/internal/entity"
)

// WordRepository defines read access to the word catalog.
type WordRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Word, error)
}
