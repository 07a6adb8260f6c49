package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/comments"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and write plan comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <plan-id>",
	Short: "Show a plan's comment thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd); err != nil {
			return err
		}

		thread, err := current.client.PlanComments(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range thread {
			fmt.Fprintf(out, "[%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.AuthorID, c.Text)
			for _, r := range c.Replies {
				fmt.Fprintf(out, "    [%s] %s: %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.AuthorID, r.Text)
			}
		}
		return nil
	},
}

var commentsAddCmd = &cobra.Command{
	Use:   "add <plan-id> <text>",
	Short: "Post a comment on a plan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd); err != nil {
			return err
		}

		created, err := current.client.CreateComment(cmd.Context(), comments.Comment{
			PlanID: args[0],
			Text:   args[1],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", created.ID)
		return nil
	},
}

var commentsReplyCmd = &cobra.Command{
	Use:   "reply <comment-id> <text>",
	Short: "Reply to a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd); err != nil {
			return err
		}

		_, err := current.client.ReplyToComment(cmd.Context(), args[0], args[1])
		return err
	},
}

func init() {
	commentsCmd.AddCommand(commentsListCmd, commentsAddCmd, commentsReplyCmd)
	rootCmd.AddCommand(commentsCmd)
}
