package entity

// QuestionType tags how a question's answer is graded.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFillBlank      QuestionType = "fill_blank"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionMathExpression QuestionType = "math_expression"
	QuestionNumeric        QuestionType = "numeric"
	QuestionTrueFalse      QuestionType = "true_false"
)

// DefaultTolerance applies to numeric and math questions without their own tolerance.
const DefaultTolerance = 0.01

// Question belongs to an assignment and carries its own grading rules.
type Question struct {
	ID            int64
	AssignmentID  int64
	Type          QuestionType
	Prompt        string
	CorrectAnswer string
	Options       []string
	Points        int
	Tolerance     *float64
	CaseSensitive bool
	ExactMatch    bool
	Position      int
}

// ToleranceOrDefault returns the configured tolerance, falling back to DefaultTolerance.
func (q *Question) ToleranceOrDefault() float64 {
	if q.Tolerance == nil || *q.Tolerance < 0 {
		return DefaultTolerance
	}
	return *q.Tolerance
}
