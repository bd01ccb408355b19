package app

import (
	"testing"

	"github.com/eslsoft/learnpath/internal/infrastructure/config"
)

func TestNewLearningPolicy(t *testing.T) {
	cfg := &config.Config{Learning: config.LearningConfig{
		ReviewIntervals:    "1,3,7,14,30,90,180",
		MasteryThreshold:   3,
		UnlockMinutes:      45,
		RequirementWorkers: 2,
		Timezone:           "UTC",
	}}
	policy, err := newLearningPolicy(cfg)
	if err != nil {
		t.Fatalf("newLearningPolicy returned error: %v", err)
	}
	if len(policy.ReviewIntervals) != 7 || policy.UnlockMinutes != 45 || policy.Location.String() != "UTC" {
		t.Fatalf("unexpected policy: %+v", policy)
	}

	cfg.Learning.MasteryThreshold = 7
	if _, err := newLearningPolicy(cfg); err == nil {
		t.Fatal("expected threshold above the top level to be rejected")
	}

	cfg.Learning.MasteryThreshold = 3
	cfg.Learning.Timezone = "Mars/Olympus"
	if _, err := newLearningPolicy(cfg); err == nil {
		t.Fatal("expected unknown timezone to be rejected")
	}
}
