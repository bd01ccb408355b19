package mapping

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/eslsoft/learnpath/internal/entity"
)

// ToConnectError maps domain and storage errors onto connect status codes.
func ToConnectError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrInvalidLearnerID),
		errors.Is(err, entity.ErrInvalidWordID),
		errors.Is(err, entity.ErrInvalidAssignmentID),
		errors.Is(err, entity.ErrInvalidRewardID),
		errors.Is(err, entity.ErrInvalidAchievement),
		errors.Is(err, entity.ErrInvalidUnlockDuration),
		errors.Is(err, entity.ErrInvalidListQuery):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, entity.ErrWordNotFound),
		errors.Is(err, entity.ErrAssignmentNotFound),
		errors.Is(err, entity.ErrAchievementNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, entity.ErrStorageUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
