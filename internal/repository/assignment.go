package repository

import (
	"context"

	"github.com/eslsoft/learnpath/internal/entity"
)

// AssignmentRepository covers questions, submissions and wrong-answer records.
type AssignmentRepository interface {
	ListQuestions(ctx context.Context, assignmentID int64) ([]entity.Question, error)
	UpsertSubmission(ctx context.Context, submission *entity.Submission) (*entity.Submission, error)
	// RecordWrongAnswer inserts the miss or bumps its attempt count and clears mastered.
	RecordWrongAnswer(ctx context.Context, wrong *entity.WrongAnswer) error
	ListWrongAnswers(ctx context.Context, learnerID int64, includeMastered bool) ([]entity.WrongAnswer, error)
	CountSubmissions(ctx context.Context, learnerID int64, perfectOnly bool) (int64, error)
}
