package cmd

import (
	"testing"

	"github.com/samber/lo"

	"github.com/eslsoft/learnpath/internal/entity"
)

func TestDefaultAchievementsAreValid(t *testing.T) {
	catalog := defaultAchievements()
	for _, def := range catalog {
		if err := def.Validate(); err != nil {
			t.Fatalf("%q: %v", def.Name, err)
		}
	}

	names := lo.Map(catalog, func(a entity.Achievement, _ int) string { return a.Name })
	if len(lo.Uniq(names)) != len(names) {
		t.Fatalf("catalog names must be unique: %v", names)
	}

	first, ok := lo.Find(catalog, func(a entity.Achievement) bool { return a.Name == "First Steps" })
	if !ok {
		t.Fatal("First Steps missing from catalog")
	}
	if id, ok := first.RewardID(); !ok || id != 1 {
		t.Fatalf("First Steps must unlock reward 1, got %d %v", id, ok)
	}
}

func TestRequirePositive(t *testing.T) {
	if err := requirePositive("learner", 0); err == nil {
		t.Fatal("expected error for zero id")
	}
	if err := requirePositive("learner", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
