package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

// GradeResult summarises a graded submission.
type GradeResult struct {
	Submission      *entity.Submission
	Percentage      int
	WrongAnswers    []entity.WrongAnswer
	NewAchievements []entity.Achievement
}

// GradingUsecase grades assignment submissions.
type GradingUsecase interface {
	GradeSubmission(ctx context.Context, assignmentID, learnerID int64, answers []entity.Answer) (*GradeResult, error)
	// ListWrongAnswers returns the learner's remediation queue.
	ListWrongAnswers(ctx context.Context, learnerID int64, includeMastered bool) ([]entity.WrongAnswer, error)
}

// NewGradingUsecase wires the evaluator, assignment storage and achievement engine.
func NewGradingUsecase(
	assignments repository.AssignmentRepository,
	evaluator AnswerEvaluator,
	achievements AchievementUsecase,
	logger logrus.FieldLogger,
) GradingUsecase {
	return &gradingUsecase{
		assignments:  assignments,
		evaluator:    evaluator,
		achievements: achievements,
		logger:       logger,
		clock:        time.Now,
	}
}

type gradingUsecase struct {
	assignments  repository.AssignmentRepository
	evaluator    AnswerEvaluator
	achievements AchievementUsecase
	logger       logrus.FieldLogger
	clock        func() time.Time
}

func (u *gradingUsecase) GradeSubmission(ctx context.Context, assignmentID, learnerID int64, answers []entity.Answer) (*GradeResult, error) {
	if assignmentID <= 0 {
		return nil, entity.ErrInvalidAssignmentID
	}
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}

	questions, err := u.assignments.ListQuestions(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, entity.ErrAssignmentNotFound
	}

	// Later answers to the same question win.
	byQuestion := lo.Associate(answers, func(a entity.Answer) (int64, string) {
		return a.QuestionID, a.Value
	})

	now := u.clock()
	submission := &entity.Submission{
		AssignmentID: assignmentID,
		LearnerID:    learnerID,
		Answers:      answers,
		SubmittedAt:  now,
	}
	var wrong []entity.WrongAnswer
	for i := range questions {
		q := &questions[i]
		submission.MaxScore += q.Points
		submitted := byQuestion[q.ID]
		if u.evaluator.Evaluate(q, submitted) {
			submission.Score += q.Points
			continue
		}
		wrong = append(wrong, entity.WrongAnswer{
			LearnerID:       learnerID,
			QuestionID:      q.ID,
			SubmittedAnswer: submitted,
			CorrectAnswer:   q.CorrectAnswer,
			Attempts:        1,
			LastAttemptedAt: now,
		})
	}

	saved, err := u.assignments.UpsertSubmission(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("upsert submission: %w", err)
	}
	for i := range wrong {
		if err := u.assignments.RecordWrongAnswer(ctx, &wrong[i]); err != nil {
			return nil, fmt.Errorf("record wrong answer for question %d: %w", wrong[i].QuestionID, err)
		}
	}

	return &GradeResult{
		Submission:      saved,
		Percentage:      percentage(saved.Score, saved.MaxScore),
		WrongAnswers:    lo.Ternary(wrong == nil, []entity.WrongAnswer{}, wrong),
		NewAchievements: checkAchievements(ctx, u.achievements, u.logger, learnerID),
	}, nil
}

func (u *gradingUsecase) ListWrongAnswers(ctx context.Context, learnerID int64, includeMastered bool) ([]entity.WrongAnswer, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	return u.assignments.ListWrongAnswers(ctx, learnerID, includeMastered)
}

func percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}
