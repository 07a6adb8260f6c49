package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/api"
	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/listing"
	"github.com/rfonline/rfclient/token"
	"github.com/rfonline/rfclient/users"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List and manage the clientele",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleAdmin, token.RoleCoach); err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		search, _ := cmd.Flags().GetString("search")
		rawRoles, _ := cmd.Flags().GetStringSlice("role")

		var roles []token.Role
		for _, raw := range rawRoles {
			role, ok := token.ParseRole(raw)
			if !ok {
				return errors.Wrapf(errors.ErrUnsupported, "role %q", raw)
			}
			roles = append(roles, role)
		}

		ctrl := listing.NewController(current.client)
		if err := ctrl.Refresh(cmd.Context(), api.ClientListParams{
			Page:   page,
			Limit:  limit,
			Search: search,
			Roles:  roles,
		}); err != nil {
			return err
		}

		result, _ := ctrl.Page()
		out := cmd.OutOrStdout()
		for _, u := range result.Users {
			fmt.Fprintf(out, "%-24s  %-30s  %s\n", u.Name, u.Email, u.Role)
		}
		fmt.Fprintf(out, "page %d/%d (%d users)\n",
			users.ClampPage(result.Page, result.TotalPages()), result.TotalPages(), result.Total)
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role <user-id> <role>",
	Short: "Move a user onto another role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleAdmin); err != nil {
			return err
		}

		role, ok := token.ParseRole(args[1])
		if !ok {
			return errors.Wrapf(errors.ErrUnsupported, "role %q", args[1])
		}
		return current.client.ChangeRole(cmd.Context(), args[0], role)
	},
}

func init() {
	clientsCmd.Flags().Int("page", 1, "page number")
	clientsCmd.Flags().Int("limit", 20, "page size")
	clientsCmd.Flags().String("search", "", "filter by name or email")
	clientsCmd.Flags().StringSlice("role", nil, "filter by role (repeatable)")

	clientsCmd.AddCommand(setRoleCmd)
	rootCmd.AddCommand(clientsCmd)
}
