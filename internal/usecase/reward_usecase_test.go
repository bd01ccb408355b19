package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/learnpath/internal/entity"
)

func TestRewardUnlockAndStatus(t *testing.T) {
	repo := newFakeAppUnlockRepo()
	uc := NewRewardUsecase(repo, quietLogger())
	impl := uc.(*rewardUsecase)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	impl.clock = func() time.Time { return start }

	status, err := uc.Status(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.Unlocked || status.Active {
		t.Fatalf("expected locked reward, got %+v", status)
	}

	unlock, err := uc.Unlock(context.Background(), 1, 10, 30)
	if err != nil {
		t.Fatalf("Unlock returned error: %v", err)
	}
	if want := start.Add(30 * time.Minute); unlock.ExpiresAt == nil || !unlock.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, unlock.ExpiresAt)
	}

	impl.clock = func() time.Time { return start.Add(29 * time.Minute) }
	status, err = uc.Status(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !status.Unlocked || !status.Active {
		t.Fatalf("expected active reward, got %+v", status)
	}

	impl.clock = func() time.Time { return start.Add(31 * time.Minute) }
	status, err = uc.Status(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !status.Unlocked || status.Active {
		t.Fatalf("expected expired reward, got %+v", status)
	}

	// Unlocking again replaces the expiry instead of stacking it.
	unlock, err = uc.Unlock(context.Background(), 1, 10, 30)
	if err != nil {
		t.Fatalf("re-Unlock returned error: %v", err)
	}
	if want := start.Add(61 * time.Minute); !unlock.ExpiresAt.Equal(want) {
		t.Fatalf("expected replaced expiry %v, got %v", want, unlock.ExpiresAt)
	}
}

func TestRewardStatusPermanentUnlock(t *testing.T) {
	repo := newFakeAppUnlockRepo()
	_ = repo.Upsert(context.Background(), &entity.AppUnlock{LearnerID: 2, RewardID: 3})
	uc := NewRewardUsecase(repo, quietLogger())

	status, err := uc.Status(context.Background(), 2, 3)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !status.Active || status.ExpiresAt != nil {
		t.Fatalf("expected permanent active unlock, got %+v", status)
	}
}

func TestRewardValidation(t *testing.T) {
	uc := NewRewardUsecase(newFakeAppUnlockRepo(), quietLogger())
	if _, err := uc.Unlock(context.Background(), 0, 1, 30); !errors.Is(err, entity.ErrInvalidLearnerID) {
		t.Fatalf("expected ErrInvalidLearnerID, got %v", err)
	}
	if _, err := uc.Unlock(context.Background(), 1, 0, 30); !errors.Is(err, entity.ErrInvalidRewardID) {
		t.Fatalf("expected ErrInvalidRewardID, got %v", err)
	}
	if _, err := uc.Unlock(context.Background(), 1, 1, 0); !errors.Is(err, entity.ErrInvalidUnlockDuration) {
		t.Fatalf("expected ErrInvalidUnlockDuration, got %v", err)
	}
}
