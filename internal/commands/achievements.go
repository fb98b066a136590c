package commands

import (
	"fmt"

	"breaktrack/internal/services"

	"github.com/spf13/cobra"
)

var (
	grantUser        string
	grantAchievement string
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Manage achievement unlocks",
}

var achievementsGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Unlock an achievement for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		svc := services.NewAchievementService(e.db)
		_, created, err := svc.Grant(cmd.Context(), grantUser, grantAchievement)
		if err != nil {
			return fmt.Errorf("grant: %w", err)
		}

		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "unlocked %q for %s\n", grantAchievement, grantUser)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already has %q\n", grantUser, grantAchievement)
		}
		return nil
	},
}

func init() {
	achievementsGrantCmd.Flags().StringVarP(&grantUser, "user", "u", "", "username")
	achievementsGrantCmd.Flags().StringVarP(&grantAchievement, "achievement", "a", "", "achievement name")
	_ = achievementsGrantCmd.MarkFlagRequired("user")
	_ = achievementsGrantCmd.MarkFlagRequired("achievement")
	achievementsCmd.AddCommand(achievementsGrantCmd)
}
