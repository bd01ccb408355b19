package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/infrastructure/database/types"
	"github.com/eslsoft/learnpath/internal/repository"
)

const (
	questionsTable    = "questions"
	submissionsTable  = "submissions"
	wrongAnswersTable = "wrong_answers"
)

type AssignmentRepository struct {
	store
}

// NewAssignmentRepository constructs the questions/submissions repository.
func NewAssignmentRepository(drv *entsql.Driver) repository.AssignmentRepository {
	return &AssignmentRepository{store: store{drv: drv}}
}

func (r *AssignmentRepository) ListQuestions(ctx context.Context, assignmentID int64) ([]entity.Question, error) {
	b := r.builder()
	q := b.Select("id", "assignment_id", "question_type", "prompt", "correct_answer", "options", "points", "tolerance", "case_sensitive", "exact_match", "position").
		From(b.Table(questionsTable)).
		Where(entsql.EQ("assignment_id", assignmentID)).
		OrderBy(entsql.Asc("position"), entsql.Asc("id"))

	return queryAll(ctx, r.store, q, func(rows *sql.Rows) (entity.Question, error) {
		var (
			question  entity.Question
			qtype     string
			options   types.StringList
			tolerance sql.NullFloat64
		)
		err := rows.Scan(&question.ID, &question.AssignmentID, &qtype, &question.Prompt, &question.CorrectAnswer,
			&options, &question.Points, &tolerance, &question.CaseSensitive, &question.ExactMatch, &question.Position)
		if err != nil {
			return question, err
		}
		question.Type = entity.QuestionType(qtype)
		question.Options = options
		if tolerance.Valid {
			v := tolerance.Float64
			question.Tolerance = &v
		}
		return question, nil
	})
}

func (r *AssignmentRepository) UpsertSubmission(ctx context.Context, s *entity.Submission) (*entity.Submission, error) {
	ins := r.builder().Insert(submissionsTable).
		Columns("assignment_id", "learner_id", "answers", "score", "max_score", "submitted_at").
		Values(s.AssignmentID, s.LearnerID, types.AnswerList(s.Answers), s.Score, s.MaxScore, s.SubmittedAt.UTC()).
		OnConflict(
			entsql.ConflictColumns("assignment_id", "learner_id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("answers")
				u.SetExcluded("score")
				u.SetExcluded("max_score")
				u.SetExcluded("submitted_at")
			}),
		)
	if _, err := r.exec(ctx, ins); err != nil {
		return nil, fmt.Errorf("upsert submission: %w", err)
	}

	b := r.builder()
	sel := b.Select("id", "assignment_id", "learner_id", "answers", "score", "max_score", "submitted_at").
		From(b.Table(submissionsTable)).
		Where(entsql.EQ("assignment_id", s.AssignmentID)).
		Where(entsql.EQ("learner_id", s.LearnerID))

	var (
		saved   entity.Submission
		answers types.AnswerList
	)
	err := r.queryRow(ctx, sel, &saved.ID, &saved.AssignmentID, &saved.LearnerID, &answers, &saved.Score, &saved.MaxScore, &saved.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("upsert submission: row vanished after write")
	}
	if err != nil {
		return nil, err
	}
	saved.Answers = answers
	return &saved, nil
}

func (r *AssignmentRepository) RecordWrongAnswer(ctx context.Context, w *entity.WrongAnswer) error {
	ins := r.builder().Insert(wrongAnswersTable).
		Columns("learner_id", "question_id", "submitted_answer", "correct_answer", "attempts", "mastered", "last_attempted_at").
		Values(w.LearnerID, w.QuestionID, w.SubmittedAnswer, w.CorrectAnswer, 1, false, w.LastAttemptedAt.UTC()).
		OnConflict(
			entsql.ConflictColumns("learner_id", "question_id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("submitted_answer")
				u.SetExcluded("correct_answer")
				u.SetExcluded("last_attempted_at")
				u.Set("mastered", false)
				u.Add("attempts", 1)
			}),
		)
	if _, err := r.exec(ctx, ins); err != nil {
		return fmt.Errorf("record wrong answer: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) ListWrongAnswers(ctx context.Context, learnerID int64, includeMastered bool) ([]entity.WrongAnswer, error) {
	b := r.builder()
	q := b.Select("id", "learner_id", "question_id", "submitted_answer", "correct_answer", "attempts", "mastered", "last_attempted_at").
		From(b.Table(wrongAnswersTable)).
		Where(entsql.EQ("learner_id", learnerID)).
		OrderBy(entsql.Desc("last_attempted_at"), entsql.Asc("id"))
	if !includeMastered {
		q.Where(entsql.EQ("mastered", false))
	}

	items, err := queryAll(ctx, r.store, q, func(rows *sql.Rows) (entity.WrongAnswer, error) {
		var w entity.WrongAnswer
		err := rows.Scan(&w.ID, &w.LearnerID, &w.QuestionID, &w.SubmittedAnswer, &w.CorrectAnswer, &w.Attempts, &w.Mastered, &w.LastAttemptedAt)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("list wrong answers: %w", err)
	}
	if items == nil {
		items = []entity.WrongAnswer{}
	}
	return items, nil
}

func (r *AssignmentRepository) CountSubmissions(ctx context.Context, learnerID int64, perfectOnly bool) (int64, error) {
	b := r.builder()
	q := b.Select(entsql.Count("*")).
		From(b.Table(submissionsTable)).
		Where(entsql.EQ("learner_id", learnerID))
	if perfectOnly {
		q.Where(entsql.ColumnsEQ("score", "max_score")).Where(entsql.GT("max_score", 0))
	}
	return r.count(ctx, q)
}
