package entity

import "errors"

// Domain errors for learners, words and assignments.
var (
	ErrInvalidLearnerID      = errors.New("invalid learner ID")
	ErrInvalidWordID         = errors.New("invalid word ID")
	ErrWordNotFound          = errors.New("word not found")
	ErrInvalidAssignmentID   = errors.New("invalid assignment ID")
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrInvalidRewardID       = errors.New("invalid reward ID")
	ErrInvalidAchievement    = errors.New("invalid achievement definition")
	ErrAchievementNotFound   = errors.New("achievement not found")
	ErrInvalidUnlockDuration = errors.New("invalid unlock duration")
)

// Errors raised by storage and list queries.
var (
	ErrInvalidListQuery   = errors.New("invalid filter or order_by")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
