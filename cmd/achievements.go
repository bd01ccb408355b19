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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/learnpath/internal/app"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Inspect and evaluate learner achievements",
}

var achievementsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate pending achievements for a learner and grant the met ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetInt64("learner")
		if err := requirePositive("learner", learner); err != nil {
			return err
		}
		container, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		granted, err := container.Achievements.CheckAndUnlock(cmd.Context(), learner)
		if err != nil {
			return fmt.Errorf("check achievements: %w", err)
		}
		return printJSON(cmd, granted)
	},
}

var achievementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the achievements a learner has earned",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetInt64("learner")
		if err := requirePositive("learner", learner); err != nil {
			return err
		}
		container, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		items, err := container.Achievements.ListGranted(cmd.Context(), learner)
		if err != nil {
			return fmt.Errorf("list achievements: %w", err)
		}
		return printJSON(cmd, items)
	},
}

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Inspect reward unlocks",
}

var rewardStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a reward is unlocked and active for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetInt64("learner")
		reward, _ := cmd.Flags().GetInt64("reward")
		if err := requirePositive("learner", learner); err != nil {
			return err
		}
		if err := requirePositive("reward", reward); err != nil {
			return err
		}
		container, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		status, err := container.Rewards.Status(cmd.Context(), learner, reward)
		if err != nil {
			return fmt.Errorf("reward status: %w", err)
		}
		return printJSON(cmd, status)
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd, rewardCmd)
	achievementsCmd.AddCommand(achievementsCheckCmd, achievementsListCmd)
	rewardCmd.AddCommand(rewardStatusCmd)

	for _, c := range []*cobra.Command{achievementsCheckCmd, achievementsListCmd, rewardStatusCmd} {
		c.Flags().Int64("learner", 0, "learner id")
	}
	rewardStatusCmd.Flags().Int64("reward", 0, "reward id")
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
