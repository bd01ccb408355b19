package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/pkg/mathexpr"
)

// shortAnswerOverlap is the fraction of reference words a free-text answer must cover.
const shortAnswerOverlap = 0.7

// AnswerEvaluator grades a single submitted answer against its question.
// Malformed answers are incorrect; evaluation never fails.
type AnswerEvaluator interface {
	Evaluate(question *entity.Question, submitted string) bool
}

type gradeFunc func(q *entity.Question, submitted string) bool

// NewAnswerEvaluator returns the evaluator covering every known question type.
func NewAnswerEvaluator() AnswerEvaluator {
	return &answerEvaluator{
		graders: map[entity.QuestionType]gradeFunc{
			entity.QuestionMultipleChoice: gradeMultipleChoice,
			entity.QuestionFillBlank:      gradeFillBlank,
			entity.QuestionTrueFalse:      gradeCaseInsensitive,
			entity.QuestionNumeric:        gradeNumeric,
			entity.QuestionMathExpression: gradeMathExpression,
			entity.QuestionShortAnswer:    gradeShortAnswer,
		},
	}
}

type answerEvaluator struct {
	graders map[entity.QuestionType]gradeFunc
}

func (e *answerEvaluator) Evaluate(q *entity.Question, submitted string) bool {
	if q == nil || strings.TrimSpace(submitted) == "" {
		return false
	}
	if grade, ok := e.graders[q.Type]; ok {
		return grade(q, submitted)
	}
	return gradeCaseInsensitive(q, submitted)
}

func gradeMultipleChoice(q *entity.Question, submitted string) bool {
	return strings.TrimSpace(submitted) == strings.TrimSpace(q.CorrectAnswer)
}

func gradeFillBlank(q *entity.Question, submitted string) bool {
	s, c := strings.TrimSpace(submitted), strings.TrimSpace(q.CorrectAnswer)
	if q.ExactMatch || q.CaseSensitive {
		return s == c
	}
	return strings.EqualFold(s, c)
}

func gradeCaseInsensitive(q *entity.Question, submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(q.CorrectAnswer))
}

func gradeNumeric(q *entity.Question, submitted string) bool {
	s, ok := parseFinite(submitted)
	if !ok {
		return false
	}
	c, ok := parseFinite(q.CorrectAnswer)
	if !ok {
		return false
	}
	return math.Abs(s-c) <= q.ToleranceOrDefault()
}

// parseFinite accepts decimal notation only; hex literals are rejected.
func parseFinite(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	digits := strings.TrimLeft(raw, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func gradeMathExpression(q *entity.Question, submitted string) bool {
	if mathexpr.Normalize(submitted) == mathexpr.Normalize(q.CorrectAnswer) {
		return true
	}
	s, err := mathexpr.Eval(submitted)
	if err != nil {
		return false
	}
	c, err := mathexpr.Eval(q.CorrectAnswer)
	if err != nil {
		return false
	}
	return math.Abs(s-c) <= q.ToleranceOrDefault()
}

// gradeShortAnswer accepts answers whose words loosely cover the reference answer.
// A reference word counts as matched when any learner word contains it or is contained by it.
func gradeShortAnswer(q *entity.Question, submitted string) bool {
	s := strings.Fields(strings.ToLower(submitted))
	c := strings.Fields(strings.ToLower(q.CorrectAnswer))
	if len(c) == 0 {
		return false
	}
	if strings.Join(s, " ") == strings.Join(c, " ") {
		return true
	}

	matched := 0
	for _, want := range c {
		for _, got := range s {
			if strings.Contains(want, got) || strings.Contains(got, want) {
				matched++
				break
			}
		}
	}
	return float64(matched)/float64(len(c)) >= shortAnswerOverlap
}
