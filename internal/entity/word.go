package entity

import "time"

// Word is a vocabulary entry from the shared catalog.
type Word struct {
	ID              int64
	Text            string
	Meaning         string
	Example         string
	DifficultyLevel int
	GradeLevel      int
	Subject         string
	CreatedAt       time.Time
}
