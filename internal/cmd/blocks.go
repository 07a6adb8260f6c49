package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/blocks"
	"github.com/rfonline/rfclient/token"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Manage workout blocks",
}

var blocksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your workout blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleCoach); err != nil {
			return err
		}

		list, err := current.client.Blocks(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, b := range list {
			fmt.Fprintf(out, "%s  %-24s  %d ejercicios\n", b.ID, b.Name, len(b.Exercises))
		}
		return nil
	},
}

var blocksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a workout block",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleCoach); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		created, err := current.client.CreateBlock(cmd.Context(), blocks.Block{
			Name:        name,
			Description: description,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", created.ID)
		return nil
	},
}

var blocksDeleteCmd = &cobra.Command{
	Use:   "delete <block-id>",
	Short: "Delete a workout block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleCoach); err != nil {
			return err
		}
		return current.client.DeleteBlock(cmd.Context(), args[0])
	},
}

func init() {
	blocksCreateCmd.Flags().String("name", "", "block name")
	blocksCreateCmd.Flags().String("description", "", "block description")
	_ = blocksCreateCmd.MarkFlagRequired("name")

	blocksCmd.AddCommand(blocksListCmd, blocksCreateCmd, blocksDeleteCmd)
	rootCmd.AddCommand(blocksCmd)
}
