/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eslsoft/learnpath/internal/adapter/repository"
	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/infrastructure/config"
	"github.com/eslsoft/learnpath/internal/infrastructure/database"
	"github.com/eslsoft/learnpath/internal/infrastructure/database/migrate"
	"github.com/eslsoft/learnpath/internal/infrastructure/server"
)

// migrateCmd creates or upgrades the schema and optionally seeds the achievement catalog.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations",
	Long:  "Creates or upgrades all tables. With --seed-achievements the default achievement catalog is upserted by name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetBool("seed-achievements")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err := server.NewLogger(cfg)
		if err != nil {
			return err
		}
		drv, cleanup, err := database.NewMigrationDriver(cfg)
		if err != nil {
			return fmt.Errorf("open migration driver: %w", err)
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := migrate.Create(ctx, drv); err != nil {
			return err
		}
		logger.Info("schema migration complete")

		if !seed {
			return nil
		}
		return seedAchievements(ctx, drv, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("seed-achievements", false, "upsert the default achievement catalog")
	migrateCmd.Flags().Duration("timeout", 30*time.Second, "migration timeout")
}

func seedAchievements(ctx context.Context, drv *entsql.Driver, logger logrus.FieldLogger) error {
	repo := repository.NewAchievementRepository(drv)
	for _, def := range defaultAchievements() {
		saved, err := repo.UpsertDefinition(ctx, &def)
		if err != nil {
			return fmt.Errorf("seed achievement %q: %w", def.Name, err)
		}
		logger.WithFields(logrus.Fields{"id": saved.ID, "name": saved.Name}).Info("achievement seeded")
	}
	return nil
}

// defaultAchievements is the built-in catalog. Reward 1 is the game room.
func defaultAchievements() []entity.Achievement {
	return []entity.Achievement{
		{Name: "First Steps", Description: "Learn your first word", Icon: "footprints",
			RequirementType: entity.RequirementWordsLearned, RequirementValue: 1,
			RewardType: entity.RewardAppUnlock, RewardValue: "1"},
		{Name: "Word Collector", Description: "Learn 10 words", Icon: "book",
			RequirementType: entity.RequirementWordsLearned, RequirementValue: 10,
			RewardType: entity.RewardBadge, RewardValue: "collector"},
		{Name: "Bookworm", Description: "Learn 50 words", Icon: "books",
			RequirementType: entity.RequirementWordsLearned, RequirementValue: 50,
			RewardType: entity.RewardAppUnlock, RewardValue: "1"},
		{Name: "Busy Day", Description: "Start 5 new words in one day", Icon: "sun",
			RequirementType: entity.RequirementWordsPerDay, RequirementValue: 5,
			RewardType: entity.RewardBadge, RewardValue: "busy-day"},
		{Name: "On a Roll", Description: "Study on 3 days", Icon: "flame",
			RequirementType: entity.RequirementDailyStreak, RequirementValue: 3,
			RewardType: entity.RewardAppUnlock, RewardValue: "1"},
		{Name: "Week Warrior", Description: "Study on 7 days", Icon: "calendar",
			RequirementType: entity.RequirementDailyStreak, RequirementValue: 7,
			RewardType: entity.RewardBadge, RewardValue: "week-warrior"},
		{Name: "Homework Hero", Description: "Complete 5 assignments", Icon: "pencil",
			RequirementType: entity.RequirementAssignmentsCompleted, RequirementValue: 5,
			RewardType: entity.RewardAppUnlock, RewardValue: "1"},
		{Name: "Perfectionist", Description: "Score full marks 3 times", Icon: "star",
			RequirementType: entity.RequirementPerfectScores, RequirementValue: 3,
			RewardType: entity.RewardBadge, RewardValue: "perfectionist"},
	}
}
