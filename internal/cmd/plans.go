package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/plans"
	"github.com/rfonline/rfclient/token"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage training plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the plans visible to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleAdmin, token.RoleCoach); err != nil {
			return err
		}

		list, err := current.client.Plans(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, p := range list {
			fmt.Fprintf(out, "%s  %-24s  %d semanas\n", p.ID, p.Name, len(p.Weeks))
		}
		return nil
	},
}

var plansAssignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign workout blocks to a plan day",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleAdmin, token.RoleCoach); err != nil {
			return err
		}

		planID, _ := cmd.Flags().GetString("plan")
		week, _ := cmd.Flags().GetInt("week")
		day, _ := cmd.Flags().GetInt("day")
		blockIDs, _ := cmd.Flags().GetStringSlice("blocks")

		report := plans.NewAssigner(current.client).Assign(cmd.Context(), planID, week, day, blockIDs)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d asignados, %d fallidos\n", len(report.Succeeded), len(report.Failed))
		for _, failure := range report.Failed {
			fmt.Fprintf(out, "  %s: %v\n", failure.BlockID, failure.Err)
		}
		if !report.AllSucceeded() {
			return errors.Wrapf(errors.ErrInternal, "%d of %d assignments failed",
				len(report.Failed), len(blockIDs))
		}
		return nil
	},
}

func init() {
	plansAssignCmd.Flags().String("plan", "", "plan ID")
	plansAssignCmd.Flags().Int("week", 1, "week number")
	plansAssignCmd.Flags().Int("day", 1, "day number")
	plansAssignCmd.Flags().StringSlice("blocks", nil, "block IDs to assign (repeatable)")
	_ = plansAssignCmd.MarkFlagRequired("plan")
	_ = plansAssignCmd.MarkFlagRequired("blocks")

	plansCmd.AddCommand(plansListCmd, plansAssignCmd)
	rootCmd.AddCommand(plansCmd)
}
