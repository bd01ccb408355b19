package entity

import "time"

// Answer is a learner's raw response to one question.
type Answer struct {
	QuestionID int64  `json:"question_id"`
	Value      string `json:"value"`
}

// Submission is the single graded attempt a learner keeps per assignment.
type Submission struct {
	ID           int64
	AssignmentID int64
	LearnerID    int64
	Answers      []Answer
	Score        int
	MaxScore     int
	SubmittedAt  time.Time
}

// Perfect reports whether every available point was earned.
func (s *Submission) Perfect() bool {
	return s.MaxScore > 0 && s.Score == s.MaxScore
}

// WrongAnswer records a missed question for later remediation.
type WrongAnswer struct {
	ID              int64
	LearnerID       int64
	QuestionID      int64
	SubmittedAnswer string
	CorrectAnswer   string
	Attempts        int
	Mastered        bool
	LastAttemptedAt time.Time
}
